package environment

import "fmt"

// Event is something that happens to the player during a tick that is
// relevant to the reward
type Event int

const (
	StepTaken Event = iota
	GoalReached
	HazardTouched
)

func (e Event) String() string {
	switch e {
	case StepTaken:
		return "StepTaken"
	case GoalReached:
		return "GoalReached"
	case HazardTouched:
		return "HazardTouched"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Task implements the reward scheme of a level
type Task interface {
	Reward(Event) float64
}

// Rewards is a Task that pays a fixed reward for each kind of event
type Rewards struct {
	Step  float64 // Paid every tick, usually negative
	Goal  float64
	Death float64 // Paid on touching deathground or falling out
}

// DefaultRewards are the rewards used unless configured otherwise
var DefaultRewards = Rewards{Step: -1, Goal: 100, Death: -100}

// Reward returns the reward for e
func (r Rewards) Reward(e Event) float64 {
	switch e {
	case StepTaken:
		return r.Step
	case GoalReached:
		return r.Goal
	case HazardTouched:
		return r.Death
	}
	panic(fmt.Sprintf("reward: illegal event %v", e))
}

// Accumulator collapses the events that occur between two agent
// decisions into a single reward
type Accumulator struct {
	task  Task
	total float64
}

// NewAccumulator returns an empty Accumulator for task
func NewAccumulator(task Task) *Accumulator {
	return &Accumulator{task: task}
}

// Add adds the reward for e
func (a *Accumulator) Add(e Event) {
	a.total += a.task.Reward(e)
}

// Total returns the reward accumulated so far
func (a *Accumulator) Total() float64 {
	return a.total
}

// Take returns the accumulated reward and zeroes the accumulator
func (a *Accumulator) Take() float64 {
	total := a.total
	a.total = 0
	return total
}

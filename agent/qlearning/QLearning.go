// Package qlearning implements the tabular Q-Learning algorithm.
//
// The agent learns an action value for every state it perceives and
// updates the value of the action taken toward the reward received
// plus the discounted value of the greedy action in the next state.
// How states are perceived, and how action values are stored, is
// determined by the agent's learning policy:
//
//	Policy	Perception	Table	Action selection
//	Random	Position	Eager	Uniform random
//	Radar	Radar		Lazy	ε-greedy, ε = noise
//
// An eager table holds a row for every position in the level from the
// start. A lazy table grows a row for each new state as it is seen.
package qlearning

import (
	"fmt"
	"math"
	"os"

	"github.com/samuelfneumann/mephistophelia/action"
	"github.com/samuelfneumann/mephistophelia/agent"
	"github.com/samuelfneumann/mephistophelia/agent/policy"
	"github.com/samuelfneumann/mephistophelia/perception"
	"github.com/samuelfneumann/mephistophelia/qtable"
	ts "github.com/samuelfneumann/mephistophelia/timestep"
	"github.com/samuelfneumann/mephistophelia/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
)

// NoiseDecay is subtracted from the noise on every update
const NoiseDecay = 1e-4

var noiseBounds = r1.Interval{Min: 0, Max: 1}

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	table     *qtable.QTable
	behaviour policy.Policy
	policy    agent.PolicyType

	learningRate float64
	discount     float64
	noise        float64

	state   perception.State // nil until ObserveFirst
	score   float64
	history []float64

	// Bounds of an eager table
	xBound, yBound int
	seed           uint64
}

// New creates a new QLearning agent. The xBound and yBound parameters
// bound the Position states of an agent using the Random policy and
// are ignored otherwise.
func New(c Config, xBound, yBound int, seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	q := &QLearning{
		policy:       c.Policy,
		learningRate: c.LearningRate,
		discount:     c.DiscountFactor,
		noise:        c.Noise,
		xBound:       xBound,
		yBound:       yBound,
		seed:         seed,
	}

	switch c.Policy {
	case agent.Random:
		if xBound < 0 || yBound < 0 {
			return nil, fmt.Errorf("new: bounds must be non-negative, have "+
				"(%d, %d)", xBound, yBound)
		}
		q.table = qtable.NewEager(xBound, yBound)
		q.behaviour = policy.NewRandom(seed)

	case agent.Radar:
		q.table = qtable.New()
		q.behaviour = policy.NewEGreedy(c.Noise, seed, q.table)
	}

	return q, nil
}

// SelectAction selects an action in the agent's current state
func (q *QLearning) SelectAction() action.Action {
	if q.state == nil && q.policy != agent.Random {
		panic("selectAction: no current state, ObserveFirst must be " +
			"called first")
	}
	return q.behaviour.SelectAction(q.state)
}

// ObserveFirst observes and records the first timestep of an episode,
// making its observation the agent's current state
func (q *QLearning) ObserveFirst(t ts.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n", t.Number)
	}
	q.observe("observeFirst", t.Observation)
	q.state = t.Observation
}

// Observe observes and records any timestep other than the first
// timestep and performs an update using the transition into it
func (q *QLearning) Observe(a action.Action, nextObs ts.TimeStep) {
	q.Update(a, nextObs.Observation, nextObs.Reward)
}

// Update performs a single Q-learning update for taking a in the
// current state, receiving reward and transitioning to next. The noise
// decays by NoiseDecay and next becomes the current state.
func (q *QLearning) Update(a action.Action, next perception.State,
	reward float64) {
	if q.state == nil {
		panic("update: no current state, ObserveFirst must be called first")
	}
	q.observe("update", next)

	q.decay()
	q.score += reward

	target := reward + q.discount*q.table.MaxValue(next)
	value := q.table.Value(q.state, a)
	q.table.Set(q.state, a, value+q.learningRate*(target-value))

	q.state = next
}

// EndEpisode appends the score of the current episode to the history
// and zeroes the score. The current state and noise are not changed.
func (q *QLearning) EndEpisode() {
	q.history = append(q.history, q.score)
	q.score = 0
}

// State returns the agent's current state, or nil if none has been
// observed
func (q *QLearning) State() perception.State {
	return q.state
}

// Score returns the cumulative reward of the current episode
func (q *QLearning) Score() float64 {
	return q.score
}

// History returns the scores of all past episodes
func (q *QLearning) History() []float64 {
	history := make([]float64, len(q.history))
	copy(history, q.history)
	return history
}

// Noise returns the probability of a random action under the Radar
// policy
func (q *QLearning) Noise() float64 {
	return q.noise
}

// SetNoise sets the noise, clipped to [0, 1]
func (q *QLearning) SetNoise(noise float64) {
	q.noise = floatutils.ClipInterval(noise, noiseBounds)
	q.syncEpsilon()
}

// LearningRate returns the step size of updates
func (q *QLearning) LearningRate() float64 {
	return q.learningRate
}

// DiscountFactor returns the discount applied to next-state values
func (q *QLearning) DiscountFactor() float64 {
	return q.discount
}

// Policy returns the agent's learning policy
func (q *QLearning) Policy() agent.PolicyType {
	return q.policy
}

// Table returns the agent's action values. The table is shared with
// the agent.
func (q *QLearning) Table() *qtable.QTable {
	return q.table
}

// Save saves the agent's action values to filename
func (q *QLearning) Save(filename string) error {
	if err := q.table.Save(filename); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}

// Load replaces the agent's action values with those saved in filename
// and returns whether any were found. A missing file is not an error.
// If the file cannot be decoded or holds states the agent cannot
// perceive, an error is returned and the action values are unchanged.
// The policy and hyperparameters are never changed.
func (q *QLearning) Load(filename string) (bool, error) {
	loaded := qtable.New()
	ok, err := loaded.Load(filename)
	if !ok || err != nil {
		return ok, err
	}

	want := q.kind()
	for _, s := range loaded.States() {
		if s.Kind() != want {
			return false, fmt.Errorf("load: %v holds %v states, agent "+
				"perceives %v states", filename, s.Kind(), want)
		}
		if p, isPos := s.(perception.Position); isPos &&
			(p.X < 0 || p.X > q.xBound || p.Y < 0 || p.Y > q.yBound) {
			return false, fmt.Errorf("load: %v holds state %v outside "+
				"bounds [0, %d]×[0, %d]", filename, p, q.xBound, q.yBound)
		}
	}

	// Rows the saved table lacks but the agent relies on existing
	if q.policy == agent.Random {
		for x := 0; x <= q.xBound; x++ {
			for y := 0; y <= q.yBound; y++ {
				loaded.Ensure(perception.Position{X: x, Y: y})
			}
		}
	} else if q.state != nil {
		loaded.Ensure(q.state)
	}

	// Replace in place, the behaviour policy shares the table
	*q.table = *loaded
	return true, nil
}

// observe ensures a row exists for s, creating one for a lazy table
// and panicking for an eager one
func (q *QLearning) observe(op string, s perception.State) {
	if s == nil {
		panic(fmt.Sprintf("%v: nil state", op))
	}
	if s.Kind() != q.kind() {
		panic(fmt.Sprintf("%v: %v policy cannot observe %v state %v", op,
			q.policy, s.Kind(), s))
	}

	if q.policy == agent.Radar {
		q.table.Ensure(s)
	} else if !q.table.Has(s) {
		panic(fmt.Sprintf("%v: state %v outside bounds [0, %d]×[0, %d]", op,
			s, q.xBound, q.yBound))
	}
}

// decay decreases the noise by NoiseDecay, flooring it at 0
func (q *QLearning) decay() {
	q.noise = math.Max(0, q.noise-NoiseDecay)
	q.syncEpsilon()
}

func (q *QLearning) syncEpsilon() {
	if e, ok := q.behaviour.(*policy.EGreedy); ok {
		e.SetEpsilon(q.noise)
	}
}

// kind returns the kind of state the agent perceives
func (q *QLearning) kind() perception.Kind {
	if q.policy == agent.Random {
		return perception.PositionKind
	}
	return perception.RadarKind
}

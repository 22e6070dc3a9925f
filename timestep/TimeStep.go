// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/mephistophelia/perception"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first step of an episode, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment.
// Reward is the total reward accumulated since the previous TimeStep.
type TimeStep struct {
	stepType    StepType
	Reward      float64
	Observation perception.State
	Number      int
}

// New returns a new TimeStep
func New(t StepType, r float64, o perception.State, n int) TimeStep {
	return TimeStep{t, r, o, n}
}

// StepType returns the type of the TimeStep
func (t TimeStep) StepType() StepType {
	return t.stepType
}

// First returns whether a TimeStep is the first in an episode
func (t TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode
func (t TimeStep) Last() bool {
	return t.stepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Step Number:  %v  |  " +
		"State: %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Number, t.Observation)
}

// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/mephistophelia/action"
	"github.com/samuelfneumann/mephistophelia/perception"
	"github.com/samuelfneumann/mephistophelia/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in the agent's current state. The Policy
// and Learner share the same action values, so that any changes the
// Learner makes are reflected in the actions the Policy chooses.
type Agent interface {
	Learner
	Policy
	Persister
	Explorer
	Scorer
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner interface {
	// Observe records that an action led to some timestep and updates
	// the action values using the transition
	Observe(a action.Action, nextObs timestep.TimeStep)

	// ObserveFirst records the first timestep in an episode, setting
	// the agent's current state
	ObserveFirst(timestep.TimeStep)

	// EndEpisode performs bookkeeping at the end of an episode
	EndEpisode()

	// State returns the agent's current state
	State() perception.State
}

// Policy represents a policy that an agent can have. Policies select
// actions in the agent's current state.
type Policy interface {
	SelectAction() action.Action
}

// Persister is an agent whose learned values can be saved to and
// restored from disk
type Persister interface {
	Save(filename string) error

	// Load restores learned values and returns whether any were found
	// at filename. A missing file is not an error.
	Load(filename string) (bool, error)
}

// Explorer is an agent whose exploration can be adjusted externally
type Explorer interface {
	Noise() float64
	SetNoise(float64)
}

// Scorer is an agent that keeps the score of its current episode and
// the scores of past episodes
type Scorer interface {
	Score() float64
	History() []float64
}

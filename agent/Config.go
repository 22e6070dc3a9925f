package agent

import (
	"github.com/samuelfneumann/mephistophelia/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// ValidAgent returns whether the argument agent is valid for the
	// Config
	ValidAgent(Agent) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error
}

// PolicyType names the learning policy an agent follows. The learning
// policy also determines how the agent perceives the world.
type PolicyType string

const (
	// Random selects actions uniformly at random and perceives the
	// world by the player's position
	Random PolicyType = "Random"

	// Radar selects actions ε-greedily and perceives the world with
	// radar probes
	Radar PolicyType = "Radar"
)

package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/mephistophelia/agent"
	"github.com/samuelfneumann/mephistophelia/environment"
	"github.com/samuelfneumann/mephistophelia/perception"
)

// Config represents a configuration for the QLearning agent
type Config struct {
	LearningRate   float64
	DiscountFactor float64
	Policy         agent.PolicyType
	Noise          float64 // Initial probability of a random action
}

// DefaultConfig returns the configuration used unless configured
// otherwise. The default agent starts greedy; exploration is turned on
// by configuring a noise or by restoring it during a run.
func DefaultConfig() Config {
	return Config{
		LearningRate:   0.8,
		DiscountFactor: 0.9,
		Policy:         agent.Radar,
		Noise:          0.0,
	}
}

// CreateAgent creates the agent from the Config. The environment must
// encode observations the way the configured policy perceives them.
// Action values are always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	if want := c.Mode(); env.Mode() != want {
		return nil, fmt.Errorf("createAgent: %v policy requires %v "+
			"observations, environment produces %v", c.Policy, want,
			env.Mode())
	}

	xBound, yBound := env.Bounds()
	return New(c, xBound, yBound, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	q, ok := a.(*QLearning)
	return ok && q.policy == c.Policy
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate must be in (0, 1], have %v",
			c.LearningRate)
	}
	if c.DiscountFactor < 0 || c.DiscountFactor > 1 {
		return fmt.Errorf("discount factor must be in [0, 1], have %v",
			c.DiscountFactor)
	}
	if c.Noise < 0 || c.Noise > 1 {
		return fmt.Errorf("noise must be in [0, 1], have %v", c.Noise)
	}
	if c.Policy != agent.Random && c.Policy != agent.Radar {
		return fmt.Errorf("no such policy %q", c.Policy)
	}
	return nil
}

// Mode returns the perception mode the configured policy requires
func (c Config) Mode() perception.Mode {
	if c.Policy == agent.Random {
		return perception.PositionMode
	}
	return perception.RadarMode
}

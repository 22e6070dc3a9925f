// Package envconfig provides configuration structs for configuring
// platformer levels with default physical parameters and rewards.
// Environment configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/mephistophelia/environment"
	"github.com/samuelfneumann/mephistophelia/environment/platformer"
	"github.com/samuelfneumann/mephistophelia/perception"
	ts "github.com/samuelfneumann/mephistophelia/timestep"
	"gonum.org/v1/gonum/spatial/r2"
)

// Defaults used by NewConfig
const (
	DefaultTile      = 64.0
	DefaultFallLimit = -100.0
)

// Config implements a specific configuration of a platformer level
type Config struct {
	Level      string  // Path of the level file
	Tile       float64 // Side of a tile in pixels
	PlayerSize r2.Vec  // Width and height of the player in pixels
	Kinematics platformer.Kinematics
	Rewards    env.Rewards
	FallLimit  float64 // Players below this height have fallen out

	// Mode determines how observations are encoded. If empty, the
	// encoding required by the agent is used.
	Mode perception.Mode
}

// NewConfig returns a new environment Config for the level stored in
// the file level, with default physical parameters and rewards
func NewConfig(level string, mode perception.Mode) Config {
	return Config{
		Level:      level,
		Tile:       DefaultTile,
		PlayerSize: r2.Vec{X: 0.75 * DefaultTile, Y: DefaultTile},
		Kinematics: platformer.DefaultKinematics,
		Rewards:    env.DefaultRewards,
		FallLimit:  DefaultFallLimit,
		Mode:       mode,
	}
}

// Validate returns an error if the configuration cannot create an
// environment
func (c Config) Validate() error {
	if c.Level == "" {
		return fmt.Errorf("no level file given")
	}
	if c.Tile <= 0 {
		return fmt.Errorf("tile size must be positive, have %v", c.Tile)
	}
	if err := c.Kinematics.Validate(c.Tile); err != nil {
		return err
	}
	if c.Mode != perception.PositionMode && c.Mode != perception.RadarMode {
		return fmt.Errorf("no such observation mode %q", c.Mode)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create() (*platformer.Platformer, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	level, err := platformer.LoadLevel(c.Level, c.Tile)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	world, err := platformer.NewWorld(level, c.PlayerSize, c.Kinematics)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	p, step, err := platformer.New(level, world, c.Rewards, c.Mode, c.FallLimit)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}
	return p, step, nil
}

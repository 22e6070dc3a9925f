// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samuelfneumann/mephistophelia/agent/qlearning"
	"github.com/samuelfneumann/mephistophelia/environment/envconfig"
	"github.com/samuelfneumann/mephistophelia/experiment/checkpointer"
	"github.com/samuelfneumann/mephistophelia/experiment/tracker"
	ts "github.com/samuelfneumann/mephistophelia/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, caching each TimeStep
// in RAM to be later saved to disk. The Save() function
// will then take all cached data and save it to disk. This is usually
// performed after an experiment has been run. The Run() method will
// run ticks until the tick limit is reached or the context is done.
// The RunEpisode() function will run a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments will
// send each TimeStep to Trackers using the Tracker's Track() method. The
// Tracker then determines which data from the TimeStep it caches and
// saves. New Trackers can be registered with an Experiment through the
// constructor or through an Experiment's Register() function.
type Experiment interface {
	Run(ctx context.Context) error
	RunEpisode(ctx context.Context) (bool, error) // Returns whether the goal was reached

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running) experiment.
	// Useful if you want to track data only after a specified event.
	Register(t tracker.Tracker)

	// Saves the current state of all agents
	checkpoint() error
}

// EndPolicy determines what happens once the goal is reached
type EndPolicy string

const (
	// Freeze stops the experiment from advancing once the goal is
	// reached, until the episode is reset externally
	Freeze EndPolicy = "Freeze"

	// AutoContinue begins a new episode once the goal is reached
	AutoContinue EndPolicy = "AutoContinue"
)

// Config represents a configuration of an experiment.
type Config struct {
	MaxTicks  uint      // 0 runs until the context is cancelled
	EndPolicy EndPolicy // What happens once the goal is reached

	// The Q-table is saved to enumerated files named after Checkpoint
	// every CheckpointEvery ticks. 0 disables checkpointing.
	CheckpointEvery uint
	Checkpoint      string

	EnvConf   envconfig.Config
	AgentConf qlearning.Config
}

// LoadConfig loads a JSON encoded Config from filename
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not read config: %v",
			err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode config: "+
			"%v", err)
	}
	return c, nil
}

// Save saves the Config as JSON to filename
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: could not encode config: %v", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save: could not write config: %v", err)
	}
	return nil
}

// Validate returns an error if the Config does not describe a runnable
// experiment
func (c Config) Validate() error {
	if c.EndPolicy != Freeze && c.EndPolicy != AutoContinue {
		return fmt.Errorf("no such end policy %q", c.EndPolicy)
	}
	if c.CheckpointEvery > 0 && c.Checkpoint == "" {
		return fmt.Errorf("checkpoint interval given without a filename")
	}
	if err := c.AgentConf.Validate(); err != nil {
		return fmt.Errorf("agent: %v", err)
	}

	env := c.EnvConf
	if env.Mode == "" {
		env.Mode = c.AgentConf.Mode()
	}
	if err := env.Validate(); err != nil {
		return fmt.Errorf("environment: %v", err)
	}
	return nil
}

// CreateExp creates the experiment described by the Config. If the
// environment configuration does not name an observation mode, the
// mode required by the agent is used. If the Config checkpoints, a
// checkpointer of the agent is added to check.
func (c Config) CreateExp(seed uint64, t []tracker.Tracker,
	check []checkpointer.Checkpointer) (*Online, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %v", err)
	}

	envConf := c.EnvConf
	if envConf.Mode == "" {
		envConf.Mode = c.AgentConf.Mode()
	}
	env, _, err := envConf.Create()
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %v",
			err)
	}

	agent, err := c.AgentConf.CreateAgent(env, seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create agent: %v", err)
	}

	if c.CheckpointEvery > 0 {
		ext := filepath.Ext(c.Checkpoint)
		name := strings.TrimSuffix(c.Checkpoint, ext)
		check = append(check, checkpointer.NewNStep(int(c.CheckpointEvery),
			agent, checkpointer.FilenameEnumerator(1, name, ext)))
	}

	return NewOnline(env, agent, c.MaxTicks, c.EndPolicy, t, check), nil
}

package experiment

import (
	"context"
	"fmt"

	"github.com/samuelfneumann/mephistophelia/agent"
	env "github.com/samuelfneumann/mephistophelia/environment"
	"github.com/samuelfneumann/mephistophelia/experiment/checkpointer"
	"github.com/samuelfneumann/mephistophelia/experiment/tracker"
	ts "github.com/samuelfneumann/mephistophelia/timestep"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
//
// Each tick of an Online experiment runs one control cycle: the agent
// selects an action in its current state, the environment takes the
// action, and the agent learns from the resulting timestep.
type Online struct {
	environment env.Environment
	agent       agent.Agent

	maxTicks  uint
	ticks     uint
	endPolicy EndPolicy

	trackers      []tracker.Tracker
	checkpointers []checkpointer.Checkpointer

	lastStep ts.TimeStep
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The maxTicks parameter determines
// how many ticks Run performs, with 0 meaning no limit. The end
// parameter determines what happens once the goal is reached. The t
// and c parameters determine what data is tracked and when the agent
// is checkpointed.
//
// The environment is reset and the agent observes the first timestep
// of the first episode.
func NewOnline(e env.Environment, a agent.Agent, maxTicks uint,
	end EndPolicy, t []tracker.Tracker,
	c []checkpointer.Checkpointer) *Online {
	if end != Freeze && end != AutoContinue {
		panic(fmt.Sprintf("newOnline: no such end policy %q", end))
	}

	o := &Online{
		environment:   e,
		agent:         a,
		maxTicks:      maxTicks,
		endPolicy:     end,
		trackers:      t,
		checkpointers: c,
	}

	o.lastStep = e.Reset()
	a.ObserveFirst(o.lastStep)
	o.track(o.lastStep)

	return o
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// AddCheckpointer adds a checkpointer.Checkpointer which is consulted
// after every tick
func (o *Online) AddCheckpointer(c checkpointer.Checkpointer) {
	o.checkpointers = append(o.checkpointers, c)
}

// Tick runs a single control cycle and returns whether the experiment
// advanced. A won episode is frozen under the Freeze policy, in which
// case the tick is skipped. Under the AutoContinue policy a new episode
// is started before the tick is run.
func (o *Online) Tick() (bool, error) {
	if o.environment.Won() {
		if o.endPolicy == Freeze {
			return false, nil
		}
		o.ResetEpisode()
	}

	// Select action, step in environment
	action := o.agent.SelectAction()
	step, _ := o.environment.Step(action)

	// Cache the environment step in each Tracker
	o.track(step)

	// Observe the timestep and update the action values
	o.agent.Observe(action, step)
	o.lastStep = step
	o.ticks++

	if err := o.checkpoint(); err != nil {
		return true, fmt.Errorf("tick: %v", err)
	}
	return true, nil
}

// Run runs ticks until the tick limit is reached, the context is done,
// or the experiment is frozen on a won episode. Run returns the
// context's error if the context ended the run.
func (o *Online) Run(ctx context.Context) error {
	for !o.done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		advanced, err := o.Tick()
		if err != nil {
			return fmt.Errorf("run: %v", err)
		}
		if !advanced {
			return nil
		}
	}
	return nil
}

// RunEpisode runs ticks until the goal is reached or the tick limit is
// reached and returns whether the goal was reached. If the current
// episode has already been won, a new episode is started first.
func (o *Online) RunEpisode(ctx context.Context) (bool, error) {
	if o.environment.Won() {
		o.ResetEpisode()
	}

	for !o.done() {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		if _, err := o.Tick(); err != nil {
			return false, fmt.Errorf("runEpisode: %v", err)
		}
		if o.environment.Won() {
			return true, nil
		}
	}
	return false, nil
}

// done returns whether the tick limit has been reached
func (o *Online) done() bool {
	return o.maxTicks > 0 && o.ticks >= o.maxTicks
}

// ResetEpisode ends the current episode and begins a new one with the
// player at the start
func (o *Online) ResetEpisode() {
	o.agent.EndEpisode()
	o.lastStep = o.environment.Reset()
	o.agent.ObserveFirst(o.lastStep)
	o.track(o.lastStep)
}

// Respawn places the player back at the start without ending the
// agent's episode. A frozen experiment is resumed by a Respawn.
func (o *Online) Respawn() {
	o.lastStep = o.environment.Respawn()
	o.agent.ObserveFirst(o.lastStep)
	o.track(o.lastStep)
}

// Explore restores full exploration and begins a new episode
func (o *Online) Explore() {
	o.agent.SetNoise(1.0)
	o.ResetEpisode()
}

// Save saves the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// SaveAgent saves the agent's learned values to filename
func (o *Online) SaveAgent(filename string) error {
	return o.agent.Save(filename)
}

// LoadAgent restores the agent's learned values from filename and
// returns whether any were found
func (o *Online) LoadAgent(filename string) (bool, error) {
	return o.agent.Load(filename)
}

// track tracks the current timestep by caching its data in each
// Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}

// checkpoint consults each Checkpointer with the current tick
func (o *Online) checkpoint() error {
	for _, c := range o.checkpointers {
		if err := c.Checkpoint(int(o.ticks)); err != nil {
			return fmt.Errorf("checkpoint: %v", err)
		}
	}
	return nil
}

// Ticks returns the number of ticks run so far
func (o *Online) Ticks() uint {
	return o.ticks
}

// LastTimeStep returns the last timestep seen by the agent
func (o *Online) LastTimeStep() ts.TimeStep {
	return o.lastStep
}

// Agent returns the agent being run
func (o *Online) Agent() agent.Agent {
	return o.agent
}

// Environment returns the environment the agent acts in
func (o *Online) Environment() env.Environment {
	return o.environment
}

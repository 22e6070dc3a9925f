// Package platformer implements a tile-based 2D platformer level in
// which a player must reach a goal while avoiding deathground.
//
// Each call to Step runs one tick of the level: the physics advances
// using the inputs held on the previous tick, the new action's inputs
// are held, and then the events of the tick are evaluated. Every tick
// costs the step reward. Touching the goal wins the episode and pays
// the goal reward. Touching deathground, or falling out of the level,
// pays the death reward and respawns the player at the start; the
// episode continues. Leaving the level horizontally wraps the player
// around to the other side. Finally the player's new surroundings are
// encoded into the observation.
package platformer

import (
	"fmt"

	"github.com/samuelfneumann/mephistophelia/action"
	env "github.com/samuelfneumann/mephistophelia/environment"
	"github.com/samuelfneumann/mephistophelia/perception"
	ts "github.com/samuelfneumann/mephistophelia/timestep"
	"gonum.org/v1/gonum/spatial/r2"
)

// Platformer is a platformer level that implements
// environment.Environment
type Platformer struct {
	env.Starter
	physics env.Physics
	level   *Level

	encoder perception.Encoder
	rewards *env.Accumulator
	fall    env.Ender

	won      bool
	number   int // Number of the current timestep in the episode
	lastStep ts.TimeStep
}

// New returns a Platformer on level. The player is simulated by
// physics and starts at the level's start tile. The returned timestep
// is the first of the first episode.
func New(level *Level, physics env.Physics, task env.Task,
	mode perception.Mode, fallLimit float64) (*Platformer, ts.TimeStep, error) {
	bounds := level.Bounds()
	encoder, err := perception.NewEncoder(mode, level.Tile, int(bounds.X),
		int(bounds.Y))
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %v", err)
	}

	p := &Platformer{
		Starter: env.NewSingleStarter(level.Start),
		physics: physics,
		level:   level,
		encoder: encoder,
		rewards: env.NewAccumulator(task),
		fall:    env.NewFallLimit(fallLimit),
	}

	return p, p.Reset(), nil
}

// Reset places the player at the start and begins a new episode
func (p *Platformer) Reset() ts.TimeStep {
	p.won = false
	return p.Respawn()
}

// Respawn places the player at the start, halted with no inputs held,
// and returns the first timestep of a new attempt. The won flag is
// cleared so that a frozen level can be resumed. Rewards not yet
// returned are discarded.
func (p *Platformer) Respawn() ts.TimeStep {
	p.respawn()
	p.rewards.Take()
	p.number = 0

	p.lastStep = ts.New(ts.First, 0, p.observe(), p.number)
	return p.lastStep
}

// Step takes one tick with action a and returns the resulting timestep
// and whether the goal has been reached
func (p *Platformer) Step(a action.Action) (ts.TimeStep, bool) {
	p.physics.Step()

	left, right, jump := a.Flags()
	p.physics.Move(left, right)
	if jump {
		p.physics.Jump()
	}

	p.rewards.Add(env.StepTaken)

	player := perception.BoxAround(p.physics.Center(), p.physics.Size())
	if !p.won && p.physics.Collides(player, perception.Goals) {
		p.won = true
		p.rewards.Add(env.GoalReached)
	}

	// Dying on the tick the goal is touched forfeits the win, though the
	// goal reward is still paid
	if p.physics.Collides(player, perception.Deathgrounds) ||
		p.fall.End(p.physics.Center()) {
		p.rewards.Add(env.HazardTouched)
		p.respawn()
	}

	p.wrap()

	p.number++
	stepType := ts.Mid
	if p.won {
		stepType = ts.Last
	}
	p.lastStep = ts.New(stepType, p.rewards.Take(), p.observe(), p.number)

	return p.lastStep, p.won
}

// respawn halts the player at the start, releases all inputs, and
// clears the won flag
func (p *Platformer) respawn() {
	p.physics.Teleport(p.Start(), true)
	p.physics.Move(false, false)
	p.won = false
}

// wrap moves a player that crossed the left or right edge of the level
// to the opposite edge
func (p *Platformer) wrap() {
	centre := p.physics.Center()
	half := p.physics.Size().X / 2
	left, right := half, p.level.Bounds().X-half

	if centre.X > right {
		p.physics.Teleport(r2.Vec{X: left, Y: centre.Y}, false)
	} else if centre.X < left {
		p.physics.Teleport(r2.Vec{X: right, Y: centre.Y}, false)
	}
}

// observe encodes the player's current surroundings
func (p *Platformer) observe() perception.State {
	return p.encoder.Encode(p.Scene())
}

// Scene returns the raw world information observations are encoded
// from
func (p *Platformer) Scene() perception.Scene {
	return perception.Scene{
		Player:   p.physics.Center(),
		Goal:     p.level.Goal,
		Geometry: p.physics,
	}
}

// Won returns whether the goal has been reached in the current episode
func (p *Platformer) Won() bool {
	return p.won
}

// Mode returns how observations are encoded
func (p *Platformer) Mode() perception.Mode {
	return p.encoder.Mode()
}

// Bounds returns the level's width and height in pixels, which bound
// Position observations
func (p *Platformer) Bounds() (int, int) {
	bounds := p.level.Bounds()
	return int(bounds.X), int(bounds.Y)
}

// LastTimeStep returns the last timestep returned by the Platformer
func (p *Platformer) LastTimeStep() ts.TimeStep {
	return p.lastStep
}

// Level returns the level being played
func (p *Platformer) Level() *Level {
	return p.level
}

// Physics returns the physics simulating the player
func (p *Platformer) Physics() env.Physics {
	return p.physics
}

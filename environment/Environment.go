// Package environment outlines the interfaces and structs needed to
// implement concrete platformer environments
package environment

import (
	"github.com/samuelfneumann/mephistophelia/action"
	"github.com/samuelfneumann/mephistophelia/perception"
	"github.com/samuelfneumann/mephistophelia/timestep"
	"gonum.org/v1/gonum/spatial/r2"
)

// Starter implements the starting point of a player in an environment
type Starter interface {
	Start() r2.Vec
}

// Ender determines whether the player has left the playable area
type Ender interface {
	End(player r2.Vec) bool
}

// Physics is the physics and geometry layer that moves the player
// through a level. Coordinates are in pixels with y increasing upwards.
type Physics interface {
	perception.Geometry

	// Move holds left and/or right for the next physics step
	Move(left, right bool)

	// Jump requests a jump and returns whether it was accepted. A jump
	// is accepted only when the player is standing on a platform.
	Jump() bool

	// Step advances the physics by one tick using the currently held
	// inputs
	Step()

	// Center returns the centre of the player
	Center() r2.Vec

	// Size returns the width and height of the player
	Size() r2.Vec

	// Teleport moves the player centre to center. If halt is true the
	// player's velocity is zeroed.
	Teleport(center r2.Vec, halt bool)
}

// Environment implements a simulated platformer level with a Task to
// complete
type Environment interface {
	Starter

	// Reset places the player at the start and begins a new episode
	Reset() timestep.TimeStep

	// Respawn places the player at the start without beginning a new
	// episode
	Respawn() timestep.TimeStep

	// Step takes one action for one tick and returns the resulting
	// timestep and whether the goal was reached
	Step(a action.Action) (timestep.TimeStep, bool)

	// Won returns whether the goal has been reached in the current
	// episode
	Won() bool

	// Mode returns how the environment encodes observations
	Mode() perception.Mode

	// Bounds returns the largest x and y values of a Position
	// observation
	Bounds() (xBound, yBound int)
}

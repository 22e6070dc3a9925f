package platformer

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/mephistophelia/perception"
	"gonum.org/v1/gonum/spatial/r2"
)

// Kinematics holds the physical constants of player movement, in
// pixels and ticks
type Kinematics struct {
	Speed     float64 // Horizontal speed while left or right is held
	Gravity   float64 // Downward acceleration per tick
	JumpSpeed float64 // Upward speed at the start of a jump
	MaxFall   float64 // Terminal falling speed
}

// DefaultKinematics are the kinematics used unless configured otherwise
var DefaultKinematics = Kinematics{
	Speed:     10,
	Gravity:   1.5,
	JumpSpeed: 25,
	MaxFall:   30,
}

// Validate returns an error if the kinematics cannot be simulated. The
// player may not move a whole tile in one tick, or it could pass
// through platforms.
func (k Kinematics) Validate(tile float64) error {
	if k.Speed <= 0 || k.Gravity <= 0 || k.JumpSpeed <= 0 || k.MaxFall <= 0 {
		return fmt.Errorf("kinematics must be positive, have %+v", k)
	}
	if k.Speed >= tile || k.JumpSpeed >= tile || k.MaxFall >= tile {
		return fmt.Errorf("speeds must be below the tile size %v, have %+v",
			tile, k)
	}
	return nil
}

// World simulates a single player moving through a level. It is the
// physics and geometry layer of a platformer: the player is an
// axis-aligned box that platforms stop, under constant gravity. World
// implements environment.Physics.
type World struct {
	level      *Level
	index      *index
	kinematics Kinematics

	centre   r2.Vec
	size     r2.Vec
	velocity r2.Vec

	left, right bool
}

// NewWorld returns a World with a player of the given size standing at
// the level's start
func NewWorld(level *Level, size r2.Vec, k Kinematics) (*World, error) {
	if err := k.Validate(level.Tile); err != nil {
		return nil, fmt.Errorf("newWorld: %v", err)
	}
	if size.X <= 0 || size.Y <= 0 || size.X > level.Tile ||
		size.Y > level.Tile {
		return nil, fmt.Errorf("newWorld: player size must be in (0, %v], "+
			"have %v", level.Tile, size)
	}

	return &World{
		level:      level,
		index:      newIndex(level),
		kinematics: k,
		centre:     level.Start,
		size:       size,
	}, nil
}

// Collides returns whether probe overlaps any tile of group g
func (w *World) Collides(probe r2.Box, g perception.Group) bool {
	return w.index.collides(probe, g)
}

// Move holds left and/or right for the next step. Holding both cancels
// horizontal movement.
func (w *World) Move(left, right bool) {
	w.left, w.right = left, right
}

// Jump starts a jump if the player is standing on a platform and
// returns whether it did
func (w *World) Jump() bool {
	if !w.Standing() {
		return false
	}
	w.velocity.Y = w.kinematics.JumpSpeed
	return true
}

// Standing returns whether the player rests on a platform
func (w *World) Standing() bool {
	below := r2.Sub(w.centre, r2.Vec{Y: 1})
	return w.Collides(perception.BoxAround(below, w.size), perception.Platforms)
}

// Step advances the simulation by one tick. The player moves along x
// and then along y, and after each move is pushed out of any platform
// it entered.
func (w *World) Step() {
	w.velocity.X = 0
	if w.left {
		w.velocity.X -= w.kinematics.Speed
	}
	if w.right {
		w.velocity.X += w.kinematics.Speed
	}

	w.velocity.Y = math.Max(w.velocity.Y-w.kinematics.Gravity,
		-w.kinematics.MaxFall)

	w.centre.X += w.velocity.X
	w.resolve(func(platform r2.Box) {
		if w.velocity.X > 0 {
			w.centre.X = platform.Min.X - w.size.X/2
		} else if w.velocity.X < 0 {
			w.centre.X = platform.Max.X + w.size.X/2
		}
	})

	w.centre.Y += w.velocity.Y
	w.resolve(func(platform r2.Box) {
		if w.velocity.Y < 0 {
			w.centre.Y = platform.Max.Y + w.size.Y/2
		} else if w.velocity.Y > 0 {
			w.centre.Y = platform.Min.Y - w.size.Y/2
		}
		w.velocity.Y = 0
	})

	// The top of the level is a ceiling
	if ceiling := w.level.Bounds().Y - w.size.Y/2; w.centre.Y > ceiling {
		w.centre.Y = ceiling
		w.velocity.Y = math.Min(w.velocity.Y, 0)
	}
}

// resolve calls push for every platform the player overlaps
func (w *World) resolve(push func(platform r2.Box)) {
	var hits []r2.Box
	w.index.overlapping(w.Box(), perception.Platforms, func(b r2.Box) bool {
		hits = append(hits, b)
		return true
	})

	for _, platform := range hits {
		if perception.Overlaps(platform, w.Box()) {
			push(platform)
		}
	}
}

// Center returns the centre of the player
func (w *World) Center() r2.Vec {
	return w.centre
}

// Size returns the width and height of the player
func (w *World) Size() r2.Vec {
	return w.size
}

// Box returns the box the player covers
func (w *World) Box() r2.Box {
	return perception.BoxAround(w.centre, w.size)
}

// Velocity returns the player's velocity
func (w *World) Velocity() r2.Vec {
	return w.velocity
}

// Teleport moves the player centre to center, optionally halting it.
// Held inputs are kept.
func (w *World) Teleport(center r2.Vec, halt bool) {
	w.centre = center
	if halt {
		w.velocity = r2.Vec{}
	}
}

// Level returns the level the player moves through
func (w *World) Level() *Level {
	return w.level
}

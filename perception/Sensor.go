package perception

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Slot identifies one of the fixed radar probes
type Slot int

const (
	Left Slot = iota
	Right
	Up
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Slots is the number of radar probes
const Slots int = 7

// offsets holds the probe offsets from the player centre, in tiles
var offsets = [Slots]r2.Vec{
	Left:      {X: -1, Y: -0.5},
	Right:     {X: 1, Y: -0.5},
	Up:        {X: 0, Y: 1.5},
	UpLeft:    {X: -1, Y: 1.5},
	UpRight:   {X: 1, Y: 1.5},
	DownLeft:  {X: -1, Y: -1.5},
	DownRight: {X: 1, Y: -1.5},
}

func (s Slot) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case UpLeft:
		return "UpLeft"
	case UpRight:
		return "UpRight"
	case DownLeft:
		return "DownLeft"
	case DownRight:
		return "DownRight"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// Geometry answers collision queries against the named groups of
// level geometry
type Geometry interface {
	// Collides returns whether the probe box overlaps any geometry in
	// group g
	Collides(probe r2.Box, g Group) bool
}

// ProbeCentres returns the centre of every radar probe for a player
// centred at player, in a level with square tiles of side tile.
func ProbeCentres(player r2.Vec, tile float64) [Slots]r2.Vec {
	var centres [Slots]r2.Vec
	for i, offset := range offsets {
		centres[i] = r2.Add(player, r2.Scale(tile, offset))
	}
	return centres
}

// Probes returns the one-tile square box of every radar probe for a
// player centred at player
func Probes(player r2.Vec, tile float64) [Slots]r2.Box {
	var boxes [Slots]r2.Box
	size := r2.Vec{X: tile, Y: tile}
	for i, centre := range ProbeCentres(player, tile) {
		boxes[i] = BoxAround(centre, size)
	}
	return boxes
}

// BoxAround returns the axis-aligned box of the given size centred at
// centre
func BoxAround(centre, size r2.Vec) r2.Box {
	half := r2.Scale(0.5, size)
	return r2.Box{Min: r2.Sub(centre, half), Max: r2.Add(centre, half)}
}

// Overlaps returns whether two boxes share interior area. Boxes that
// only touch along an edge do not overlap.
func Overlaps(a, b r2.Box) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

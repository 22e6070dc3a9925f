package perception

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Mode determines which encoding an Encoder produces
type Mode string

const (
	PositionMode Mode = "Position"
	RadarMode    Mode = "Radar"
)

// Scene is the raw world information needed to produce a State. All
// of it arrives as plain values; encoders never mutate the world.
type Scene struct {
	Player   r2.Vec // Player centre
	Goal     r2.Vec // Goal point
	Geometry Geometry
}

// Encoder converts a Scene into a State
type Encoder interface {
	Encode(Scene) State
	Mode() Mode
}

// NewEncoder returns the encoder for mode. Position encoders bound
// positions to [0, xBound]×[0, yBound]; radar encoders size their
// probes to one tile.
func NewEncoder(mode Mode, tile float64, xBound, yBound int) (Encoder, error) {
	switch mode {
	case PositionMode:
		if xBound < 0 || yBound < 0 {
			return nil, fmt.Errorf("newEncoder: bounds must be "+
				"non-negative, have (%d, %d)", xBound, yBound)
		}
		return PositionEncoder{XBound: xBound, YBound: yBound}, nil

	case RadarMode:
		if tile <= 0 {
			return nil, fmt.Errorf("newEncoder: tile size must be "+
				"positive, have %v", tile)
		}
		return RadarEncoder{Tile: tile}, nil
	}

	return nil, fmt.Errorf("newEncoder: no such mode %q", mode)
}

// PositionEncoder encodes the player's rounded position. Positions
// outside [0, XBound]×[0, YBound] are a programming error in the
// caller and cause a panic.
type PositionEncoder struct {
	XBound, YBound int
}

// Mode returns PositionMode
func (p PositionEncoder) Mode() Mode {
	return PositionMode
}

// Encode returns the Position of the player in the scene
func (p PositionEncoder) Encode(s Scene) State {
	state := Position{
		X: int(math.Round(s.Player.X)),
		Y: int(math.Round(s.Player.Y)),
	}

	if state.X < 0 || state.X > p.XBound || state.Y < 0 || state.Y > p.YBound {
		panic(fmt.Sprintf("encode: position %v outside bounds [0, %d]×[0, %d]",
			state, p.XBound, p.YBound))
	}
	return state
}

// RadarEncoder encodes the readings of seven one-tile probes placed
// around the player
type RadarEncoder struct {
	Tile float64
}

// Mode returns RadarMode
func (r RadarEncoder) Mode() Mode {
	return RadarMode
}

// Encode returns the Radar reading of the scene. Each probe reports
// the first of Platform, Deathground or Goal that it touches, or Empty.
// The probe whose centre is closest to the goal, with ties going to
// the earliest slot, is flagged as nearest.
func (r RadarEncoder) Encode(s Scene) State {
	var state Radar

	centres := ProbeCentres(s.Player, r.Tile)
	distances := make([]float64, Slots)
	size := r2.Vec{X: r.Tile, Y: r.Tile}

	for i, centre := range centres {
		state[i].Symbol = read(s.Geometry, BoxAround(centre, size))
		distances[i] = r2.Norm(r2.Sub(centre, s.Goal))
	}

	// MinIdx returns the first index on ties
	state[floats.MinIdx(distances)].Nearest = true

	return state
}

// read returns the symbol of the highest priority group the probe
// touches
func read(g Geometry, probe r2.Box) Symbol {
	for _, p := range priority {
		if g.Collides(probe, p.group) {
			return p.symbol
		}
	}
	return Empty
}

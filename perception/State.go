// Package perception implements the discretisation of a platformer
// world into hashable states that index an agent's action values.
//
// Two encodings are provided. The Position encoding enumerates the
// player's rounded world position. The Radar encoding places seven
// probes around the player and records what each probe touches, along
// with which probe lies closest to the goal, so that the resulting
// state does not depend on where in the level the player is.
package perception

import (
	"fmt"
	"strings"
)

// State is a discrete observation of the world. Every concrete State
// is a comparable value type so that States may be used directly as
// map keys; two States are equal exactly when their values are equal.
type State interface {
	fmt.Stringer
	Kind() Kind
}

// Kind identifies the concrete variant of a State
type Kind uint8

const (
	PositionKind Kind = iota + 1
	RadarKind
)

func (k Kind) String() string {
	switch k {
	case PositionKind:
		return "Position"
	case RadarKind:
		return "Radar"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Position is the player's rounded world position in pixels
type Position struct {
	X, Y int
}

// Kind returns PositionKind
func (p Position) Kind() Kind {
	return PositionKind
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Reading is what a single radar probe reports: the symbol of the
// first geometry group it touches and whether it is the probe nearest
// to the goal.
type Reading struct {
	Symbol  Symbol
	Nearest bool
}

func (r Reading) String() string {
	return fmt.Sprintf("(%v, %v)", r.Symbol, r.Nearest)
}

// Radar is an ordered reading of all seven probes, indexed by Slot.
// The order of readings is significant: two Radars holding the same
// readings in different slots are distinct states.
type Radar [Slots]Reading

// Kind returns RadarKind
func (r Radar) Kind() Kind {
	return RadarKind
}

// NearestSlot returns the slot flagged as nearest to the goal, or -1
// if no slot is flagged
func (r Radar) NearestSlot() Slot {
	for i, reading := range r {
		if reading.Nearest {
			return Slot(i)
		}
	}
	return -1
}

func (r Radar) String() string {
	readings := make([]string, len(r))
	for i := range r {
		readings[i] = r[i].String()
	}
	return "(" + strings.Join(readings, ", ") + ")"
}

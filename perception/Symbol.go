package perception

import "fmt"

// Symbol is the symbolic reading of a radar probe
type Symbol uint8

const (
	Empty Symbol = iota
	Platform
	Deathground
	Goal
)

// Valid returns whether s is one of the enumerated symbols
func (s Symbol) Valid() bool {
	return s <= Goal
}

func (s Symbol) String() string {
	switch s {
	case Empty:
		return "*"
	case Platform:
		return "PF"
	case Deathground:
		return "DG"
	case Goal:
		return "GO"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// Group names a layer of level geometry that can be queried for
// collisions
type Group uint8

const (
	Platforms Group = iota
	Deathgrounds
	Goals
)

func (g Group) String() string {
	switch g {
	case Platforms:
		return "Platforms"
	case Deathgrounds:
		return "Deathground"
	case Goals:
		return "Goal"
	default:
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
}

// priority lists the geometry groups in the order probes query them.
// A probe reports the symbol of the first group it touches, so a probe
// touching both a platform and the goal always reads Platform.
var priority = [...]struct {
	group  Group
	symbol Symbol
}{
	{Platforms, Platform},
	{Deathgrounds, Deathground},
	{Goals, Goal},
}

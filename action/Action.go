// Package action implements the closed set of locomotion actions an
// agent may select in a platformer level
package action

import "fmt"

// Action is a single locomotion command. Actions are enumerated in a
// fixed order, and that order is significant: greedy action selection
// breaks ties in favour of the action that comes first.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	JumpLeft
	JumpRight
)

// Count is the number of actions available to an agent
const Count int = 4

// All returns every action in enumeration order
func All() []Action {
	return []Action{MoveLeft, MoveRight, JumpLeft, JumpRight}
}

// Valid returns whether a is one of the enumerated actions
func (a Action) Valid() bool {
	return a >= MoveLeft && a <= JumpRight
}

// Flags returns the input flags that the action holds for one tick of
// the physics step: whether left or right is held and whether a jump
// is requested.
func (a Action) Flags() (left, right, jump bool) {
	switch a {
	case MoveLeft:
		return true, false, false
	case MoveRight:
		return false, true, false
	case JumpLeft:
		return true, false, true
	case JumpRight:
		return false, true, true
	}
	panic(fmt.Sprintf("flags: illegal action %d", int(a)))
}

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case JumpLeft:
		return "JumpLeft"
	case JumpRight:
		return "JumpRight"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

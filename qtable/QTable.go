// Package qtable implements a growable table of action values indexed
// by discrete perception states
package qtable

import (
	"fmt"

	"github.com/samuelfneumann/mephistophelia/action"
	"github.com/samuelfneumann/mephistophelia/perception"
	"gonum.org/v1/gonum/floats"
)

// Row holds the estimated value of every action in a single state,
// indexed by action
type Row [action.Count]float64

// QTable maps states to rows of action values. A row must be created
// with Ensure (or by eager construction) before it is read; reading a
// missing row is a programming error and panics.
//
// QTable is not safe for concurrent use.
type QTable struct {
	rows   map[perception.State]*Row
	states []perception.State // Insertion order, for stable iteration
}

// New returns an empty QTable whose rows are created lazily
func New() *QTable {
	return &QTable{rows: make(map[perception.State]*Row)}
}

// NewEager returns a QTable with a zero row for every position in
// [0, xBound]×[0, yBound]
func NewEager(xBound, yBound int) *QTable {
	if xBound < 0 || yBound < 0 {
		panic(fmt.Sprintf("newEager: bounds must be non-negative, have "+
			"(%d, %d)", xBound, yBound))
	}

	size := (xBound + 1) * (yBound + 1)
	q := &QTable{
		rows:   make(map[perception.State]*Row, size),
		states: make([]perception.State, 0, size),
	}

	for x := 0; x <= xBound; x++ {
		for y := 0; y <= yBound; y++ {
			q.Ensure(perception.Position{X: x, Y: y})
		}
	}
	return q
}

// Ensure creates a zero row for s if none exists and returns whether
// a row was created
func (q *QTable) Ensure(s perception.State) bool {
	if _, ok := q.rows[s]; ok {
		return false
	}
	q.rows[s] = &Row{}
	q.states = append(q.states, s)
	return true
}

// Has returns whether s has a row
func (q *QTable) Has(s perception.State) bool {
	_, ok := q.rows[s]
	return ok
}

// Row returns a copy of the row for s
func (q *QTable) Row(s perception.State) Row {
	return *q.row("row", s)
}

// Value returns the estimated value of taking a in s
func (q *QTable) Value(s perception.State, a action.Action) float64 {
	return q.row("value", s)[a]
}

// Set sets the estimated value of taking a in s
func (q *QTable) Set(s perception.State, a action.Action, value float64) {
	q.row("set", s)[a] = value
}

// BestAction returns the action with the largest value in s. Ties are
// broken in favour of the action that comes first in enumeration
// order.
func (q *QTable) BestAction(s perception.State) action.Action {
	row := q.row("bestAction", s)
	return action.Action(floats.MaxIdx(row[:]))
}

// MaxValue returns the largest action value in s
func (q *QTable) MaxValue(s perception.State) float64 {
	row := q.row("maxValue", s)
	return floats.Max(row[:])
}

// Len returns the number of rows in the table
func (q *QTable) Len() int {
	return len(q.states)
}

// States returns every state with a row, in the order rows were
// created
func (q *QTable) States() []perception.State {
	states := make([]perception.State, len(q.states))
	copy(states, q.states)
	return states
}

// Equal returns whether two tables hold the same states with the same
// action values
func (q *QTable) Equal(other *QTable) bool {
	if q.Len() != other.Len() {
		return false
	}
	for s, row := range q.rows {
		otherRow, ok := other.rows[s]
		if !ok || *row != *otherRow {
			return false
		}
	}
	return true
}

// row returns the row for s, panicking with the name of the calling
// operation if no row exists
func (q *QTable) row(op string, s perception.State) *Row {
	row, ok := q.rows[s]
	if !ok {
		panic(fmt.Sprintf("%v: no row for state %v", op, s))
	}
	return row
}

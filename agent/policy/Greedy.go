// Package policy implements policies over tabular action values
package policy

import (
	"github.com/samuelfneumann/mephistophelia/action"
	"github.com/samuelfneumann/mephistophelia/perception"
	"github.com/samuelfneumann/mephistophelia/qtable"
)

// Policy selects an action in a state
type Policy interface {
	SelectAction(s perception.State) action.Action
}

// Greedy implements a greedy policy over a QTable
type Greedy struct {
	table *qtable.QTable
}

// NewGreedy creates a new Greedy policy. The policy shares the table
// with the caller, so updates made to the table are reflected in the
// actions the policy selects.
func NewGreedy(table *qtable.QTable) *Greedy {
	return &Greedy{table}
}

// SelectAction selects the action with the largest value in s, with
// ties broken in favour of the action that comes first
func (p *Greedy) SelectAction(s perception.State) action.Action {
	return p.table.BestAction(s)
}

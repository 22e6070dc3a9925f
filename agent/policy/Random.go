package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/mephistophelia/action"
	"github.com/samuelfneumann/mephistophelia/perception"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random selects actions uniformly at random, ignoring the state
type Random struct {
	dist distuv.Categorical
}

// NewRandom returns a new Random policy
func NewRandom(seed uint64) *Random {
	weights := make([]float64, action.Count)
	for i := range weights {
		weights[i] = 1.0
	}

	return &Random{distuv.NewCategorical(weights, rand.NewSource(seed))}
}

// SelectAction selects an action uniformly at random. The state is
// ignored.
func (r *Random) SelectAction(perception.State) action.Action {
	return action.Action(r.dist.Rand())
}

package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/mephistophelia/action"
	"github.com/samuelfneumann/mephistophelia/perception"
	"github.com/samuelfneumann/mephistophelia/qtable"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a QTable. With
// probability ε an action is selected uniformly at random, otherwise
// the greedy action is selected.
type EGreedy struct {
	GreedyPolicy *Greedy
	epsilon      float64
	seed         rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected
func NewEGreedy(e float64, seed uint64, table *qtable.QTable) *EGreedy {
	if e < 0 || e > 1 {
		panic(fmt.Sprintf("newEGreedy: epsilon must be in [0, 1], have %v", e))
	}
	source := rand.NewSource(seed)

	return &EGreedy{NewGreedy(table), e, source}
}

// Epsilon returns the probability of selecting a random action
func (e *EGreedy) Epsilon() float64 {
	return e.epsilon
}

// SetEpsilon sets the probability of selecting a random action
func (e *EGreedy) SetEpsilon(epsilon float64) {
	e.epsilon = epsilon
}

// SelectAction selects an action from an ε-greedy policy
func (e *EGreedy) SelectAction(s perception.State) action.Action {
	// Get the greedy action
	greedyAction := e.GreedyPolicy.SelectAction(s)

	// Calculate the ε probability of choosing any action at random
	prob := e.epsilon / float64(action.Count)
	actionProbabilities := make([]float64, action.Count)
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedyAction] += (1.0 - e.epsilon)

	// Construct a categorical distribution over actions using action
	// probabilities
	dist := distuv.NewCategorical(actionProbabilities, e.seed)

	return action.Action(dist.Rand())
}

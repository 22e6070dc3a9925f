package environment

import "gonum.org/v1/gonum/spatial/r2"

// SingleStarter always starts the player at the same point
type SingleStarter struct {
	start r2.Vec
}

// NewSingleStarter returns a Starter that starts at start
func NewSingleStarter(start r2.Vec) SingleStarter {
	return SingleStarter{start}
}

// Start returns the starting point
func (s SingleStarter) Start() r2.Vec {
	return s.start
}

package environment

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/spatial/r2"
)

// IntervalLimit implements the Ender interface to signal whenever the
// player leaves some interval along either axis
type IntervalLimit struct {
	X, Y r1.Interval
}

// NewIntervalLimit creates and returns a new interval limit
func NewIntervalLimit(x, y r1.Interval) Ender {
	if x.Min > x.Max || y.Min > y.Max {
		panic("newIntervalLimit: interval minimum exceeds maximum")
	}
	return &IntervalLimit{x, y}
}

// NewFallLimit returns an Ender that signals once the player falls
// below threshold. The horizontal axis is unbounded since levels wrap
// horizontally.
func NewFallLimit(threshold float64) Ender {
	unbounded := r1.Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	return NewIntervalLimit(unbounded, r1.Interval{
		Min: threshold,
		Max: math.Inf(1),
	})
}

// End returns whether the player lies outside the limit
func (i *IntervalLimit) End(player r2.Vec) bool {
	return player.X < i.X.Min || player.X > i.X.Max ||
		player.Y < i.Y.Min || player.Y > i.Y.Max
}

// Package floatutils provides utilities for working with floats
package floatutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Clip returns value limited to [min, max]. A NaN value is clipped to
// min.
func Clip(value, min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("clip: minimum %v exceeds maximum %v", min, max))
	}
	if math.IsNaN(value) {
		return min
	}
	return math.Max(min, math.Min(value, max))
}

// ClipInterval returns value limited to the closed interval
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

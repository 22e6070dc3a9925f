package floatutils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r1"
)

func TestClipInterval(t *testing.T) {
	unit := r1.Interval{Min: 0, Max: 1}
	tests := []struct {
		value, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
		{math.Inf(1), 1},
		{math.NaN(), 0},
	}

	for _, test := range tests {
		if have := ClipInterval(test.value, unit); have != test.want {
			t.Errorf("clip %v: want %v, have %v", test.value, test.want, have)
		}
	}
}

func TestClipEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an empty interval")
		}
	}()
	Clip(0.5, 1, 0)
}

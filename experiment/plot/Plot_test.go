package plot

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestMovingAverage(t *testing.T) {
	have := MovingAverage([]float64{2, 4, 6, 8, 10}, 2)
	want := []float64{2, 3, 5, 7, 9}

	for i := range want {
		if math.Abs(have[i]-want[i]) > 1e-12 {
			t.Fatalf("moving average: want %v, have %v", want, have)
		}
	}
}

func TestLearningCurve(t *testing.T) {
	var buf bytes.Buffer
	err := LearningCurve(&buf, "Scores", 3,
		Series{Name: "Score", Values: []float64{-50, -20, 60, 97}})
	if err != nil {
		t.Fatal(err)
	}

	html := buf.String()
	for _, want := range []string{"<html", "Scores", "Score (mean of 3)"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart page does not contain %q", want)
		}
	}
}

package timestep

import (
	"strings"
	"testing"

	"github.com/samuelfneumann/mephistophelia/perception"
)

func TestStepTypes(t *testing.T) {
	obs := perception.Position{X: 3, Y: 4}

	tests := []struct {
		stepType         StepType
		first, mid, last bool
	}{
		{First, true, false, false},
		{Mid, false, true, false},
		{Last, false, false, true},
	}

	for _, test := range tests {
		// Methods are called directly on returned values
		if New(test.stepType, 0, obs, 1).StepType() != test.stepType {
			t.Errorf("%v: wrong step type", test.stepType)
		}
		if New(test.stepType, 0, obs, 1).First() != test.first {
			t.Errorf("%v: First should be %v", test.stepType, test.first)
		}
		if New(test.stepType, 0, obs, 1).Mid() != test.mid {
			t.Errorf("%v: Mid should be %v", test.stepType, test.mid)
		}
		if New(test.stepType, 0, obs, 1).Last() != test.last {
			t.Errorf("%v: Last should be %v", test.stepType, test.last)
		}
	}
}

func TestString(t *testing.T) {
	str := New(Last, 99, perception.Position{X: 3, Y: 4}, 7).String()
	for _, want := range []string{"Last", "99.00", "7", "(3, 4)"} {
		if !strings.Contains(str, want) {
			t.Errorf("%q should contain %q", str, want)
		}
	}
}

package action

import "testing"

func TestFlags(t *testing.T) {
	tests := []struct {
		a                 Action
		left, right, jump bool
	}{
		{MoveLeft, true, false, false},
		{MoveRight, false, true, false},
		{JumpLeft, true, false, true},
		{JumpRight, false, true, true},
	}

	for _, test := range tests {
		left, right, jump := test.a.Flags()
		if left != test.left || right != test.right || jump != test.jump {
			t.Errorf("%v: want flags (%v, %v, %v), have (%v, %v, %v)",
				test.a, test.left, test.right, test.jump, left, right, jump)
		}
	}
}

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != Count {
		t.Fatalf("want %d actions, have %d", Count, len(all))
	}
	for i, a := range all {
		if int(a) != i {
			t.Errorf("action %v at position %d", a, i)
		}
		if !a.Valid() {
			t.Errorf("action %v should be valid", a)
		}
	}
	if Action(Count).Valid() {
		t.Error("out of range action should not be valid")
	}
}

func TestFlagsIllegalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("flags: expected panic on illegal action")
		}
	}()
	Action(-1).Flags()
}

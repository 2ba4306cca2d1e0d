package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionThrust)
	f.Set(ActionRotateLeft)
	f.Set(ActionNone)

	for a := ActionNone; a < actionCount; a++ {
		want := a == ActionThrust || a == ActionRotateLeft
		if f.Has(a) != want {
			t.Errorf("Has(%v) = %v, expected %v", a, f.Has(a), want)
		}
	}

	c := f.Clone()
	f.Clear()
	if !f.Empty() || f.Has(ActionThrust) {
		t.Error("Clear should drop every action")
	}
	if !c.Has(ActionThrust) {
		t.Error("clone should not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionThrust, "Thrust"},
		{ActionLateralRight, "LateralRight"},
		{ActionPause, "Pause"},
		{Action(-1), "Unknown"},
		{actionCount, "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}

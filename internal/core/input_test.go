package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("fresh frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionLeft) {
		t.Error("Clear() left actions set")
	}
}

func TestInputFrameNilMap(t *testing.T) {
	var f InputFrame

	if f.Has(ActionJump) {
		t.Error("zero-value frame should report nothing")
	}

	// Set on a zero value allocates the map instead of panicking.
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on zero-value frame lost the action")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSlide)

	clone := f.Clone()
	if !clone.Has(ActionSlide) {
		t.Error("clone missing action")
	}

	clone.Set(ActionJump)
	if f.Has(ActionJump) {
		t.Error("mutating the clone affected the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionJump, "Jump"},
		{ActionSlide, "Slide"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

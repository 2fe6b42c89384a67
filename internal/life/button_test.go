package life

import (
	"testing"

	"paint-life/internal/core"
)

func TestButtonStates(t *testing.T) {
	b := NewButton()
	inside := core.Point{X: 10, Y: 10}
	outside := core.Point{X: 100, Y: 100}

	cases := []struct {
		name       string
		p          core.Point
		hasPointer bool
		held, edge bool
		state      core.ControlState
		activated  bool
	}{
		{"away", outside, true, false, false, core.ControlIdle, false},
		{"no pointer", inside, false, true, true, core.ControlIdle, false},
		{"hover", inside, true, false, false, core.ControlHovered, false},
		{"press", inside, true, true, true, core.ControlPressed, true},
		{"hold", inside, true, true, false, core.ControlPressed, false},
		{"press outside", outside, true, true, true, core.ControlIdle, false},
	}
	for _, tc := range cases {
		got := b.Update(tc.p, tc.hasPointer, tc.held, tc.edge)
		if got != tc.activated || b.State() != tc.state {
			t.Fatalf("%s: activated=%v state=%v, want %v %v", tc.name, got, b.State(), tc.activated, tc.state)
		}
	}
}

func TestButtonLabelAndColour(t *testing.T) {
	if Label(core.Editing) != "Start" || Label(core.Running) != "Reset" {
		t.Fatal("unexpected labels")
	}
	if Background(core.ControlIdle) == Background(core.ControlHovered) ||
		Background(core.ControlHovered) == Background(core.ControlPressed) {
		t.Fatal("control states must have distinct backgrounds")
	}
}

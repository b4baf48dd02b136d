package toggleswitch

import "testing"

func TestSetState(t *testing.T) {
	var got []bool
	s := New("A/C", func(on bool) { got = append(got, on) })

	if s.State() {
		t.Fatal("new switch should start off")
	}
	s.SetState(true)
	if !s.State() {
		t.Error("state not set")
	}
	// same state again must not re-notify
	s.SetState(true)
	s.SetState(false)

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("change notifications: got %v, want [true false]", got)
	}
}

func TestTappedToggles(t *testing.T) {
	s := New("recirculate", nil)
	s.Tapped(nil)
	if !s.State() {
		t.Error("tap did not turn the switch on")
	}
	s.Tapped(nil)
	if s.State() {
		t.Error("second tap did not turn the switch off")
	}
}

func TestKnobPositionFollowsState(t *testing.T) {
	s := New("", nil)
	s.SetState(true)
	if s.knobFrac != 1 {
		t.Errorf("knob fraction after on: got %v, want 1", s.knobFrac)
	}
	s.SetState(false)
	if s.knobFrac != 0 {
		t.Errorf("knob fraction after off: got %v, want 0", s.knobFrac)
	}
}

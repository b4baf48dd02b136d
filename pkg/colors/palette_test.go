package colors

import "testing"

func TestVisionModeRoundTrip(t *testing.T) {
	for _, name := range SupportedVisionModes {
		mode := StringToVisionMode(name)
		if mode.String() != name {
			t.Errorf("round trip %q: got %q", name, mode.String())
		}
	}
	if StringToVisionMode("garbage") != ModeNormal {
		t.Error("unknown mode should fall back to Normal")
	}
}

func TestBandStops(t *testing.T) {
	for _, name := range SupportedVisionModes {
		stops := BandStops(StringToVisionMode(name))
		if len(stops) != 4 {
			t.Fatalf("%s: got %d stops, want 4", name, len(stops))
		}
		last := -1.0
		for i, s := range stops {
			if s.Position < last {
				t.Errorf("%s: stop %d out of order", name, i)
			}
			last = s.Position
			if s.Color == nil {
				t.Errorf("%s: stop %d has nil color", name, i)
			}
		}
	}
}

package sim

import (
	"testing"
	"time"

	"github.com/opendash/cardash/pkg/ebus"
)

func TestStepProfile(t *testing.T) {
	speed, rpm, coolant, fuel := step(0)
	if speed < 0 {
		t.Errorf("speed at t=0: got %v, want >= 0", speed)
	}
	if rpm < idleRPM {
		t.Errorf("rpm never drops below idle: got %v", rpm)
	}
	if coolant < 19 || coolant > 21 {
		t.Errorf("cold start coolant: got %v, want about 20", coolant)
	}
	if fuel != 100 {
		t.Errorf("fuel at t=0: got %v, want 100", fuel)
	}

	// after a long warmup the engine sits at operating temperature
	_, _, warm, _ := step(3600)
	if warm < maxCoolant-1 {
		t.Errorf("warm coolant: got %v, want about %v", warm, maxCoolant)
	}
	// and the tank is empty, not negative
	_, _, _, empty := step(10 * tankSeconds)
	if empty != 0 {
		t.Errorf("fuel after draining: got %v, want 0", empty)
	}
}

func TestSimPublishes(t *testing.T) {
	got := make(chan float64, 10)
	cancel := ebus.SubscribeFunc(TopicSpeed, func(v float64) {
		select {
		case got <- v:
		default:
		}
	})
	defer cancel()

	s := New()
	s.interval = 5 * time.Millisecond
	s.Start()
	defer s.Stop()

	select {
	case v := <-got:
		if v < 0 {
			t.Errorf("published speed: got %v, want >= 0", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no speed update published")
	}
}

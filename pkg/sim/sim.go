// Package sim publishes a synthetic drive cycle on the event bus so the
// dashboard can be exercised without a vehicle attached.
package sim

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/opendash/cardash/pkg/ebus"
)

// Topics published by the simulator and consumed by the dashboard.
const (
	TopicSpeed   = "speed"
	TopicRPM     = "rpm"
	TopicCoolant = "coolant"
	TopicFuel    = "fuel"
)

const (
	idleRPM     = 850.0
	rpmPerKmh   = 52.0
	maxCoolant  = 92.0
	tankSeconds = 3600.0
)

type Sim struct {
	interval time.Duration

	mu   sync.Mutex
	quit chan struct{}
}

func New() *Sim {
	return &Sim{interval: 100 * time.Millisecond}
}

func (s *Sim) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quit != nil {
		return
	}
	s.quit = make(chan struct{})
	go s.run(s.quit)
}

func (s *Sim) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quit == nil {
		return
	}
	close(s.quit)
	s.quit = nil
}

func (s *Sim) run(quit chan struct{}) {
	t := time.NewTicker(s.interval)
	defer t.Stop()
	start := time.Now()
	for {
		select {
		case <-quit:
			return
		case <-t.C:
			elapsed := time.Since(start).Seconds()
			speed, rpm, coolant, fuel := step(elapsed)
			publish(TopicSpeed, speed)
			publish(TopicRPM, rpm)
			publish(TopicCoolant, coolant)
			publish(TopicFuel, fuel)
		}
	}
}

func publish(topic string, value float64) {
	if err := ebus.Publish(topic, value); err != nil {
		log.Println(err)
	}
}

// step evaluates the drive cycle at t seconds: accelerate out of town,
// cruise with gentle swells, and slow back down, while the engine warms
// up and the tank drains.
func step(t float64) (speed, rpm, coolant, fuel float64) {
	speed = 48 + 45*math.Sin(t/9)
	if speed < 0 {
		speed = 0
	}
	rpm = idleRPM
	if speed > 0 {
		rpm = idleRPM + speed*rpmPerKmh
	}
	coolant = maxCoolant - (maxCoolant-20)*math.Exp(-t/120)
	fuel = 100 * (1 - t/tankSeconds)
	if fuel < 0 {
		fuel = 0
	}
	return speed, rpm, coolant, fuel
}

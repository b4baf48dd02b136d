package windows

import (
	"testing"
	"time"

	"github.com/opendash/cardash/pkg/ebus"
	"github.com/opendash/cardash/pkg/sim"
)

func TestSpeedDragFeedsBus(t *testing.T) {
	p := NewDashboardPage()
	defer p.Close()

	ch := ebus.Subscribe(sim.TopicSpeed)
	defer ebus.Unsubscribe(ch)

	p.speed.GetConfig().OnValueChanged(77)

	// the initial gauge value travels the same topic, skip past it
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v := <-ch:
			if v == 77 {
				return
			}
		case <-deadline:
			t.Fatal("dragged speed value never reached the bus")
		}
	}
}

package ebus_test

import (
	"testing"
	"time"

	"github.com/opendash/cardash/pkg/ebus"
)

func TestPublish(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		data    float64
		wantErr bool
	}{
		{
			name:  "test",
			topic: "test",
			data:  1.23,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr := ebus.Publish(tt.topic, tt.data)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("Publish() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("Publish() succeeded unexpectedly")
			}
		})
	}
}

func TestSubscribe(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		wantNil bool
	}{
		{
			name:  "speed",
			topic: "speed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotChan := ebus.Subscribe(tt.topic)
			if gotChan == nil {
				if !tt.wantNil {
					t.Errorf("Subscribe() failed: got nil channel")
				}
				return
			}
			if tt.wantNil {
				t.Fatal("Subscribe() succeeded unexpectedly")
			}
			ebus.Publish(tt.topic, 3.14)
			v := <-gotChan
			if v != 3.14 {
				t.Errorf("Subscribe() got %v, want 3.14", v)
			}
			ebus.Unsubscribe(gotChan)
		})
	}
}

func TestSubscribeFunc(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		wantNil bool
	}{
		{
			name:  "rpm",
			topic: "rpm",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := ebus.SubscribeFunc(tt.topic, func(v float64) {
				if v != 2.71 {
					t.Errorf("SubscribeFunc() got %v, want 2.71", v)
				}
			})
			if cleanup == nil {
				if !tt.wantNil {
					t.Errorf("SubscribeFunc() failed: got nil cleanup function")
				}
				return
			}
			if tt.wantNil {
				t.Fatal("SubscribeFunc() succeeded unexpectedly")
			}
			ebus.Publish(tt.topic, 2.71)
			cleanup()
		})
	}
}

func TestSMAAggregator(t *testing.T) {
	ebus.RegisterAggregator(ebus.SMAAggregator("sma.in", "sma.out", 2))

	out := ebus.Subscribe("sma.out")
	defer ebus.Unsubscribe(out)

	ebus.Publish("sma.in", 10)
	if v := <-out; v != 10 {
		t.Errorf("first average = %v, want 10", v)
	}
	ebus.Publish("sma.in", 20)
	select {
	case v := <-out:
		if v != 15 {
			t.Errorf("second average = %v, want 15", v)
		}
	case <-time.After(time.Second):
		t.Fatal("no averaged value published")
	}
}

// Package ebus is the in-process value bus connecting metric producers
// (the drive simulator, gauge drag gestures) to the widgets displaying
// them. The last published value per topic is cached so subscribers that
// attach late still get an initial reading.
package ebus

import (
	"errors"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type Message struct {
	Topic string
	Value float64
}

var (
	initOnce sync.Once

	subs      = make(map[string][]chan float64)
	subsMutex sync.Mutex

	inChan    = make(chan Message, 100)
	unsubChan = make(chan chan float64, 100)

	cache *ttlcache.Cache[string, float64]

	aggregators     []*Aggregator
	aggregatorsLock sync.Mutex
)

func init() {
	initOnce.Do(func() {
		cache = ttlcache.New[string, float64](
			ttlcache.WithTTL[string, float64](1 * time.Minute),
		)
		go run()
	})
}

func run() {
	for {
		select {
		case msg := <-inChan:
			if v := cache.Get(msg.Topic); v != nil {
				if v.Value() == msg.Value {
					continue
				}
			}
			cache.Set(msg.Topic, msg.Value, ttlcache.DefaultTTL)
			subsMutex.Lock()
			for _, sub := range subs[msg.Topic] {
				select {
				case sub <- msg.Value:
				default:
				}
			}
			subsMutex.Unlock()
			aggregatorsLock.Lock()
			for _, agg := range aggregators {
				agg.fun(msg.Topic, msg.Value)
			}
			aggregatorsLock.Unlock()
		case channel := <-unsubChan:
			subsMutex.Lock()
			for topic, channels := range subs {
				for i, sub := range channels {
					if sub == channel {
						subs[topic] = append(channels[:i], channels[i+1:]...)
						close(channel)
						break
					}
				}
			}
			subsMutex.Unlock()
		}
	}
}

func Publish(topic string, value float64) error {
	select {
	case inChan <- Message{Topic: topic, Value: value}:
		return nil
	default:
		return errors.New("ebus: publish buffer full")
	}
}

func Subscribe(topic string) chan float64 {
	respChan := make(chan float64, 100)
	subsMutex.Lock()
	subs[topic] = append(subs[topic], respChan)
	subsMutex.Unlock()
	if itm := cache.Get(topic); itm != nil {
		respChan <- itm.Value()
	}
	return respChan
}

// SubscribeFunc returns a function that can be used to unsubscribe the function
func SubscribeFunc(topic string, f func(float64)) func() {
	respChan := Subscribe(topic)
	go func() {
		for v := range respChan {
			f(v)
		}
	}()
	return func() {
		Unsubscribe(respChan)
	}
}

func Unsubscribe(channel chan float64) {
	unsubChan <- channel
}

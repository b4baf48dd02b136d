package ebus

type AggregatorFunc func(topic string, value float64)

type Aggregator struct {
	fun AggregatorFunc
}

func RegisterAggregator(aggs ...*Aggregator) {
	aggregatorsLock.Lock()
	defer aggregatorsLock.Unlock()
outer:
	for _, agg := range aggs {
		for _, existing := range aggregators {
			if existing == agg {
				continue outer
			}
		}
		aggregators = append(aggregators, agg)
	}
}

// SMAAggregator republishes a simple moving average of src onto outputName.
// Used for the smoothed speed readout on the dashboard tab.
func SMAAggregator(src, outputName string, window int) *Aggregator {
	if window < 1 {
		window = 1
	}
	var ring []float64
	var pos int
	return &Aggregator{
		fun: func(topic string, value float64) {
			if topic != src {
				return
			}
			if len(ring) < window {
				ring = append(ring, value)
			} else {
				ring[pos] = value
				pos = (pos + 1) % window
			}
			var sum float64
			for _, v := range ring {
				sum += v
			}
			Publish(outputName, sum/float64(len(ring)))
		},
	}
}

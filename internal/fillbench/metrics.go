package fillbench

import (
	"sync/atomic"
	"time"
)

// Collector defines an interface for collecting benchmark metrics.
// Implementations must be safe for concurrent use: fill rates are measured
// in parallel.
type Collector interface {
	// RecordMeasurement is called after each strategy measurement.
	RecordMeasurement(s Strategy, iterations int64, elapsed time.Duration)

	// RecordMismatch is called when a strategy disagrees with ForEachBit.
	RecordMismatch(s Strategy)
}

// NoopCollector is a no-op implementation of Collector.
type NoopCollector struct{}

func (NoopCollector) RecordMeasurement(Strategy, int64, time.Duration) {}
func (NoopCollector) RecordMismatch(Strategy)                          {}

// BasicCollector provides simple in-memory metrics collection per strategy.
type BasicCollector struct {
	measurements [numStrategies]atomic.Int64
	iterations   [numStrategies]atomic.Int64
	nanos        [numStrategies]atomic.Int64
	mismatches   [numStrategies]atomic.Int64
}

// RecordMeasurement implements Collector.
func (b *BasicCollector) RecordMeasurement(s Strategy, iterations int64, elapsed time.Duration) {
	b.measurements[s].Add(1)
	b.iterations[s].Add(iterations)
	b.nanos[s].Add(elapsed.Nanoseconds())
}

// RecordMismatch implements Collector.
func (b *BasicCollector) RecordMismatch(s Strategy) {
	b.mismatches[s].Add(1)
}

// GetStats returns a snapshot of the metrics of strategy s.
func (b *BasicCollector) GetStats(s Strategy) BasicStats {
	stats := BasicStats{
		Measurements: b.measurements[s].Load(),
		Iterations:   b.iterations[s].Load(),
		Mismatches:   b.mismatches[s].Load(),
	}
	if stats.Iterations > 0 {
		stats.AvgNanos = b.nanos[s].Load() / stats.Iterations
	}
	return stats
}

// BasicStats is a snapshot of BasicCollector state for one strategy.
type BasicStats struct {
	Measurements int64
	Iterations   int64
	AvgNanos     int64
	Mismatches   int64
}

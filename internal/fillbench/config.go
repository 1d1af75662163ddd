package fillbench

import (
	"fmt"
	"time"
)

// Config describes a fill-rate benchmark run.
type Config struct {
	// FillRates are the probabilities with which each bit is set.
	FillRates []float64

	// MaxCount is the number of candidate bits per vector.
	MaxCount int

	// Seed seeds the RNG; every fill rate starts from the same seed.
	Seed int64

	// Duration is the measurement time per strategy and fill rate.
	Duration time.Duration

	// Strategies are the enumeration strategies to measure.
	Strategies []Strategy

	// Parallelism bounds the number of fill rates measured concurrently.
	// Values above 1 trade measurement stability for wall-clock time.
	Parallelism int
}

// DefaultConfig returns the reference configuration: ten fill rates from 1%
// to 95% over 4096 bits, one second per measurement, all strategies,
// sequential.
func DefaultConfig() Config {
	return Config{
		FillRates:   []float64{0.01, 0.05, 0.10, 0.20, 0.40, 0.50, 0.60, 0.70, 0.80, 0.95},
		MaxCount:    4096,
		Seed:        123456,
		Duration:    time.Second,
		Strategies:  AllStrategies(),
		Parallelism: 1,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if len(c.FillRates) == 0 {
		return ErrNoFillRates
	}
	for _, r := range c.FillRates {
		if r < 0 || r > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidFillRate, r)
		}
	}
	if c.MaxCount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxCount, c.MaxCount)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, c.Duration)
	}
	if len(c.Strategies) == 0 {
		return ErrNoStrategies
	}
	for _, s := range c.Strategies {
		if s >= numStrategies {
			return fmt.Errorf("%w: %d", ErrUnknownStrategy, s)
		}
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidParallelism, c.Parallelism)
	}
	return nil
}

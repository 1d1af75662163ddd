package fillbench

import "errors"

var (
	// ErrNoFillRates is returned when the configuration lists no fill rate.
	ErrNoFillRates = errors.New("no fill rates configured")

	// ErrInvalidFillRate is returned for a fill rate outside [0, 1].
	ErrInvalidFillRate = errors.New("fill rate must be within [0, 1]")

	// ErrInvalidMaxCount is returned when MaxCount is not positive.
	ErrInvalidMaxCount = errors.New("max count must be positive")

	// ErrInvalidDuration is returned when Duration is not positive.
	ErrInvalidDuration = errors.New("duration must be positive")

	// ErrNoStrategies is returned when the configuration lists no strategy.
	ErrNoStrategies = errors.New("no strategies configured")

	// ErrUnknownStrategy is returned for an unrecognized strategy.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrInvalidParallelism is returned when Parallelism is below one.
	ErrInvalidParallelism = errors.New("parallelism must be at least 1")

	// ErrStrategyMismatch is returned when a strategy enumerates different
	// bits than ForEachBit.
	ErrStrategyMismatch = errors.New("strategy output mismatch")
)

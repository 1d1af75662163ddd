package fillbench

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with benchmark-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithFillRate adds a fill_rate field to the logger.
func (l *Logger) WithFillRate(rate float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("fill_rate", rate),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// LogInput logs the vector built for a fill rate.
func (l *Logger) LogInput(ctx context.Context, cardinality, words int) {
	l.DebugContext(ctx, "input built",
		"cardinality", cardinality,
		"words", words,
	)
}

// LogMeasurement logs a single strategy measurement.
func (l *Logger) LogMeasurement(ctx context.Context, r Result) {
	l.DebugContext(ctx, "measurement completed",
		"iterations", r.Iterations,
		"elapsed", r.Elapsed,
		"ops_per_ms", r.OpsPerMillisecond(),
	)
}

// LogMismatch logs a strategy whose output disagrees with ForEachBit.
func (l *Logger) LogMismatch(ctx context.Context, want, got int) {
	l.ErrorContext(ctx, "strategy output mismatch",
		"want_bits", want,
		"got_bits", got,
	)
}

// LogRun logs a complete run.
func (l *Logger) LogRun(ctx context.Context, fillRates, strategies int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"fill_rates", fillRates,
			"strategies", strategies,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"fill_rates", fillRates,
			"strategies", strategies,
		)
	}
}

package fillbench

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/testutil"
)

// ctxCheckInterval is the number of iterations between cancellation checks.
const ctxCheckInterval = 1024

// Result is the measurement of one strategy at one fill rate.
type Result struct {
	FillRate    float64
	Strategy    Strategy
	Cardinality int
	Iterations  int64
	Elapsed     time.Duration
}

// OpsPerMillisecond returns the number of full enumerations per millisecond.
func (r Result) OpsPerMillisecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Iterations) / (float64(r.Elapsed) / float64(time.Millisecond))
}

// Run measures every configured strategy at every configured fill rate.
//
// Results are ordered by fill rate, then by strategy, as configured. Before
// timing, the output of each strategy is checked against ForEachBit; a
// disagreement aborts the run with ErrStrategyMismatch.
func Run(ctx context.Context, cfg Config, optFns ...Option) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := applyOptions(optFns)

	results := make([]Result, len(cfg.FillRates)*len(cfg.Strategies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)

	for i, rate := range cfg.FillRates {
		slot := results[i*len(cfg.Strategies) : (i+1)*len(cfg.Strategies)]

		g.Go(func() error {
			return runFillRate(gctx, cfg, rate, slot, opts)
		})
	}

	err := g.Wait()
	opts.logger.LogRun(ctx, len(cfg.FillRates), len(cfg.Strategies), err)

	if err != nil {
		return nil, err
	}
	return results, nil
}

func runFillRate(ctx context.Context, cfg Config, rate float64, out []Result, opts options) error {
	logger := opts.logger.WithFillRate(rate)

	in, err := buildInput(cfg, rate)
	if err != nil {
		return err
	}
	logger.LogInput(ctx, in.bv.Cardinality(), len(in.bv.Words()))

	want := enumerators[ForEachBit](in, nil)
	buf := make([]int, 0, len(want))

	for j, s := range cfg.Strategies {
		if err := ctx.Err(); err != nil {
			return err
		}

		slogger := logger.WithStrategy(s)

		buf = s.enumerate(in, buf)
		if !slices.Equal(want, buf) {
			opts.collector.RecordMismatch(s)
			slogger.LogMismatch(ctx, len(want), len(buf))
			return fmt.Errorf("%w: %s at fill rate %v", ErrStrategyMismatch, s, rate)
		}

		iterations, elapsed, err := measure(ctx, cfg.Duration, func() {
			buf = s.enumerate(in, buf)
		})
		if err != nil {
			return err
		}

		out[j] = Result{
			FillRate:    rate,
			Strategy:    s,
			Cardinality: len(want),
			Iterations:  iterations,
			Elapsed:     elapsed,
		}

		opts.collector.RecordMeasurement(s, iterations, elapsed)
		slogger.LogMeasurement(ctx, out[j])
	}

	return nil
}

// buildInput sets each bit in [0, MaxCount) with probability rate. Every
// fill rate draws from a fresh RNG seeded with cfg.Seed so that runs are
// reproducible regardless of scheduling.
func buildInput(cfg Config, rate float64) (*input, error) {
	rng := testutil.NewRNG(cfg.Seed)

	bv := bitvec.NewWithCapacity(cfg.MaxCount - 1)
	for _, i := range rng.FillRate(cfg.MaxCount, float32(rate)) {
		bv.SetUnchecked(i)
	}

	rb, err := bv.ToRoaring()
	if err != nil {
		return nil, fmt.Errorf("build roaring input: %w", err)
	}

	return &input{bv: bv, rb: rb, maxCount: cfg.MaxCount}, nil
}

// measure calls fn repeatedly for at least d and returns the iteration count
// and the elapsed time.
func measure(ctx context.Context, d time.Duration, fn func()) (int64, time.Duration, error) {
	var iterations int64

	start := time.Now()
	deadline := start.Add(d)

	for {
		fn()
		iterations++

		if iterations%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return iterations, time.Since(start), err
			}
		}

		if time.Now().After(deadline) {
			return iterations, time.Since(start), nil
		}
	}
}

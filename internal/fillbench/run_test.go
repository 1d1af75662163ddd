package fillbench

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortConfig() Config {
	cfg := DefaultConfig()
	cfg.FillRates = []float64{0.05, 0.5, 0.95}
	cfg.MaxCount = 512
	cfg.Duration = time.Millisecond
	return cfg
}

func TestRun(t *testing.T) {
	cfg := shortConfig()
	cfg.Parallelism = 2

	collector := &BasicCollector{}
	results, err := Run(context.Background(), cfg, WithCollector(collector), WithLogger(nil))
	require.NoError(t, err)
	require.Len(t, results, len(cfg.FillRates)*len(cfg.Strategies))

	for i, rate := range cfg.FillRates {
		for j, s := range cfg.Strategies {
			r := results[i*len(cfg.Strategies)+j]
			assert.Equal(t, rate, r.FillRate)
			assert.Equal(t, s, r.Strategy)
			assert.Positive(t, r.Iterations)
			assert.GreaterOrEqual(t, r.Elapsed, cfg.Duration)
			assert.Positive(t, r.OpsPerMillisecond())
		}
	}

	// all strategies of one fill rate see the same vector
	for i := range cfg.FillRates {
		row := results[i*len(cfg.Strategies) : (i+1)*len(cfg.Strategies)]
		for _, r := range row {
			assert.Equal(t, row[0].Cardinality, r.Cardinality)
		}
	}

	for _, s := range cfg.Strategies {
		stats := collector.GetStats(s)
		assert.Equal(t, int64(len(cfg.FillRates)), stats.Measurements)
		assert.Positive(t, stats.Iterations)
		assert.Zero(t, stats.Mismatches)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := shortConfig()
	cfg.MaxCount = -1

	_, err := Run(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrInvalidMaxCount)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, shortConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Mismatch(t *testing.T) {
	orig := enumerators[Scan]
	t.Cleanup(func() { enumerators[Scan] = orig })

	enumerators[Scan] = func(in *input, out []int) []int {
		out = orig(in, out)
		if len(out) > 0 {
			out = out[1:]
		}
		return out
	}

	cfg := shortConfig()
	collector := &BasicCollector{}

	_, err := Run(context.Background(), cfg, WithCollector(collector))
	require.ErrorIs(t, err, ErrStrategyMismatch)
	assert.Contains(t, err.Error(), "scan")
	assert.Equal(t, int64(1), collector.GetStats(Scan).Mismatches)
}

func TestResult_OpsPerMillisecond(t *testing.T) {
	r := Result{Iterations: 500, Elapsed: 250 * time.Millisecond}
	assert.InDelta(t, 2.0, r.OpsPerMillisecond(), 1e-9)

	assert.Zero(t, Result{Iterations: 10}.OpsPerMillisecond())
}

func TestMeasure_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, _, err := measure(ctx, time.Hour, func() {})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(ctxCheckInterval), n)
}

// Command bitvecbench measures how fast set bits can be enumerated at
// different fill rates.
//
// Usage:
//
//	bitvecbench -rates 0.01,0.5,0.95 -duration 500ms -strategies foreach,roaring
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/hupe1980/bitvec/internal/bitcount"
	"github.com/hupe1980/bitvec/internal/fillbench"
)

var defaults = fillbench.DefaultConfig()

var (
	rates      = flag.String("rates", formatRates(defaults.FillRates), "comma-separated fill rates in [0, 1]")
	maxCount   = flag.Int("max", defaults.MaxCount, "number of candidate bits per vector")
	seed       = flag.Int64("seed", defaults.Seed, "RNG seed")
	duration   = flag.Duration("duration", defaults.Duration, "measurement time per strategy and fill rate")
	strategies = flag.String("strategies", formatStrategies(defaults.Strategies), "comma-separated enumeration strategies")
	parallel   = flag.Int("parallel", defaults.Parallelism, "fill rates measured concurrently")
	logLevel   = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logJSON    = flag.Bool("log-json", false, "emit JSON logs")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bitvecbench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := parseLevel(*logLevel)
	if err != nil {
		return err
	}

	logger := fillbench.NewTextLogger(level)
	if *logJSON {
		logger = fillbench.NewJSONLogger(level)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "starting",
		"bitcount", bitcount.Implementation(),
		"hardware_popcount", bitcount.HasHardwarePopcount(),
		"max", cfg.MaxCount,
		"duration", cfg.Duration,
		"parallel", cfg.Parallelism,
	)

	collector := &fillbench.BasicCollector{}

	results, err := fillbench.Run(ctx, cfg,
		fillbench.WithLogger(logger),
		fillbench.WithCollector(collector),
	)
	if err != nil {
		return err
	}

	if err := printResults(os.Stdout, results); err != nil {
		return err
	}

	for _, s := range cfg.Strategies {
		stats := collector.GetStats(s)
		logger.DebugContext(ctx, "strategy summary",
			"strategy", s.String(),
			"measurements", stats.Measurements,
			"iterations", stats.Iterations,
			"avg_ns", stats.AvgNanos,
		)
	}

	return nil
}

func buildConfig() (fillbench.Config, error) {
	cfg := fillbench.DefaultConfig()

	fillRates, err := parseRates(*rates)
	if err != nil {
		return cfg, err
	}
	strats, err := parseStrategies(*strategies)
	if err != nil {
		return cfg, err
	}

	cfg.FillRates = fillRates
	cfg.MaxCount = *maxCount
	cfg.Seed = *seed
	cfg.Duration = *duration
	cfg.Strategies = strats
	cfg.Parallelism = *parallel

	return cfg, cfg.Validate()
}

func printResults(w io.Writer, results []fillbench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "fill rate\tstrategy\tbits\titerations\tops/ms\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%.2f\t%s\t%d\t%d\t%.1f\t\n",
			r.FillRate, r.Strategy, r.Cardinality, r.Iterations, r.OpsPerMillisecond())
	}

	return tw.Flush()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

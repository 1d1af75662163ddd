// Package fillbench measures set-bit enumeration throughput across fill
// rates.
//
// For every fill rate a bit vector of MaxCount bits is populated from a
// seeded RNG, each bit kept with probability equal to the rate. Every
// configured Strategy then enumerates the set bits repeatedly for Duration.
// Before timing, each strategy's output is checked against ForEachBit.
//
// # Strategies
//
//   - ForEachBit: BitVector.ForEachBit (lowest-set-bit isolation)
//   - Iterator:   BitVector.Iterator (HasNext/Next cursor)
//   - Seq:        BitVector.All (range-over-func)
//   - Scan:       per-index BitVector.Get, the baseline
//   - Roaring:    roaring.Bitmap.Iterate over the same bits
//
// # Example Usage
//
//	cfg := fillbench.DefaultConfig()
//	cfg.Duration = 200 * time.Millisecond
//
//	results, err := fillbench.Run(ctx, cfg,
//	    fillbench.WithLogger(fillbench.NewTextLogger(slog.LevelInfo)),
//	)
//	for _, r := range results {
//	    fmt.Println(r.FillRate, r.Strategy, r.OpsPerMillisecond())
//	}
//
// Fill rates run concurrently up to Config.Parallelism; strategies within a
// fill rate run sequentially.
package fillbench

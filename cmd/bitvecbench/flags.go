package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/bitvec/internal/fillbench"
)

func parseRates(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		r, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", fillbench.ErrInvalidFillRate, field)
		}
		out = append(out, r)
	}
	return out, nil
}

func parseStrategies(s string) ([]fillbench.Strategy, error) {
	var out []fillbench.Strategy
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		st, ok := fillbench.ParseStrategy(field)
		if !ok {
			return nil, fmt.Errorf("%w: %q", fillbench.ErrUnknownStrategy, field)
		}
		out = append(out, st)
	}
	return out, nil
}

func formatRates(rates []float64) string {
	parts := make([]string, len(rates))
	for i, r := range rates {
		parts[i] = strconv.FormatFloat(r, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func formatStrategies(strategies []fillbench.Strategy) string {
	parts := make([]string, len(strategies))
	for i, s := range strategies {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

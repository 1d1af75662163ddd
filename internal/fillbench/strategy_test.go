package fillbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "foreach", ForEachBit.String())
	assert.Equal(t, "iterator", Iterator.String())
	assert.Equal(t, "seq", Seq.String())
	assert.Equal(t, "scan", Scan.String())
	assert.Equal(t, "roaring", Roaring.String())
	assert.Equal(t, "unknown", numStrategies.String())
}

func TestParseStrategy(t *testing.T) {
	for _, s := range AllStrategies() {
		got, ok := ParseStrategy(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}

	got, ok := ParseStrategy("  SEQ ")
	assert.True(t, ok)
	assert.Equal(t, Seq, got)

	_, ok = ParseStrategy("bogus")
	assert.False(t, ok)
}

func TestStrategies_Agree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCount = 1000

	for _, rate := range []float64{0, 0.01, 0.5, 1} {
		in, err := buildInput(cfg, rate)
		require.NoError(t, err)

		want := ForEachBit.enumerate(in, nil)
		assert.Len(t, want, in.bv.Cardinality())

		for _, s := range AllStrategies() {
			assert.Equal(t, want, s.enumerate(in, nil), "%s at %v", s, rate)
		}
	}
}

func TestBuildInput_Deterministic(t *testing.T) {
	cfg := DefaultConfig()

	a, err := buildInput(cfg, 0.3)
	require.NoError(t, err)
	b, err := buildInput(cfg, 0.3)
	require.NoError(t, err)

	assert.True(t, a.bv.Equal(b.bv))
	assert.Equal(t, uint64(a.bv.Cardinality()), a.rb.GetCardinality())
	assert.LessOrEqual(t, a.bv.Length(), cfg.MaxCount)
}

// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for generating bit index sets and IndexSet, a
// map-backed reference set used to check the bit vector's set algebra.
//
// # Random Index Sets
//
//	rng := testutil.NewRNG(seed)
//	idx := rng.Indices(100, 5000)      // 100 distinct sorted indices < 5000
//	fill := rng.FillRate(4096, 0.05)   // each index < 4096 kept with p=0.05
//
// # Reference Model
//
//	want := testutil.NewIndexSet(a...).And(testutil.NewIndexSet(b...))
//	assert.Equal(t, want.Sorted(), got.ToSlice(nil))
package testutil

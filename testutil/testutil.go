package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Indices returns n distinct indices in [0, limit), sorted ascending.
// n is capped at limit.
func (r *RNG) Indices(n, limit int) []int {
	n = min(n, limit)

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int]struct{}, n)
	out := make([]int, 0, n)
	for len(out) < n {
		i := r.rand.Intn(limit)
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// FillRate returns, in ascending order, each index in [0, maxCount) that
// passed a draw with probability rate. Locks only once per call.
func (r *RNG) FillRate(maxCount int, rate float32) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, 0, int(float32(maxCount)*rate)+1)
	for i := 0; i < maxCount; i++ {
		if r.rand.Float32() <= rate {
			out = append(out, i)
		}
	}
	return out
}

// IndexSet is a reference set of bit indices backed by a map.
// Operations return new sets and never modify their operands.
type IndexSet map[int]struct{}

// NewIndexSet creates a set holding indices.
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// Has reports whether i is in the set.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// And returns the intersection of s and o.
func (s IndexSet) And(o IndexSet) IndexSet {
	out := make(IndexSet)
	for i := range s {
		if o.Has(i) {
			out[i] = struct{}{}
		}
	}
	return out
}

// AndNot returns the elements of s that are not in o.
func (s IndexSet) AndNot(o IndexSet) IndexSet {
	out := make(IndexSet)
	for i := range s {
		if !o.Has(i) {
			out[i] = struct{}{}
		}
	}
	return out
}

// Or returns the union of s and o.
func (s IndexSet) Or(o IndexSet) IndexSet {
	out := make(IndexSet, len(s)+len(o))
	for i := range s {
		out[i] = struct{}{}
	}
	for i := range o {
		out[i] = struct{}{}
	}
	return out
}

// Xor returns the symmetric difference of s and o.
func (s IndexSet) Xor(o IndexSet) IndexSet {
	out := make(IndexSet)
	for i := range s {
		if !o.Has(i) {
			out[i] = struct{}{}
		}
	}
	for i := range o {
		if !s.Has(i) {
			out[i] = struct{}{}
		}
	}
	return out
}

// Below returns the elements of s that are smaller than limit.
func (s IndexSet) Below(limit int) IndexSet {
	out := make(IndexSet)
	for i := range s {
		if i < limit {
			out[i] = struct{}{}
		}
	}
	return out
}

// Sorted returns the elements in ascending order. An empty set yields an
// empty, non-nil slice.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

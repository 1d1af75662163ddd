package bitvec

import (
	"iter"

	"github.com/hupe1980/bitvec/internal/bitcount"
)

// ForEachBit calls fn with the index of every set bit in ascending order.
//
// Each word is consumed by isolating its lowest set bit (w & -w), so the
// cost is proportional to the number of set bits plus the number of words,
// not to the highest index.
func (v *BitVector) ForEachBit(fn func(index int)) {
	for i, w := range v.words {
		base := i << wordShift
		for w != 0 {
			t := w & -w
			w ^= t
			fn(base + bitcount.OnesCount32(t-1))
		}
	}
}

// All returns an iterator over the indices of all set bits in ascending
// order.
func (v *BitVector) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, w := range v.words {
			base := i << wordShift
			for w != 0 {
				t := w & -w
				w ^= t
				if !yield(base + bitcount.OnesCount32(t-1)) {
					return
				}
			}
		}
	}
}

// ToSlice appends the indices of all set bits to dst[:0] and returns the
// result.
func (v *BitVector) ToSlice(dst []int) []int {
	dst = dst[:0]
	v.ForEachBit(func(index int) {
		dst = append(dst, index)
	})
	return dst
}

// Iterator is a forward-only cursor over the set bits of a BitVector.
//
// It reads the word slice the vector had when the iterator was created;
// mutating the vector while iterating is not supported. An exhausted
// Iterator stays exhausted; call BitVector.Iterator again to restart.
type Iterator struct {
	words []uint32
	idx   int
	word  uint32
}

// Iterator returns a new Iterator positioned before the lowest set bit.
func (v *BitVector) Iterator() *Iterator {
	it := &Iterator{words: v.words}
	if len(v.words) > 0 {
		it.word = v.words[0]
	}
	return it
}

// HasNext reports whether another set bit remains.
func (it *Iterator) HasNext() bool {
	for it.word == 0 {
		if it.idx+1 >= len(it.words) {
			it.idx = len(it.words)
			return false
		}
		it.idx++
		it.word = it.words[it.idx]
	}
	return true
}

// Next returns the index of the next set bit, or -1 when exhausted.
func (it *Iterator) Next() int {
	if !it.HasNext() {
		return -1
	}
	t := it.word & -it.word
	it.word ^= t
	return it.idx<<wordShift + bitcount.OnesCount32(t-1)
}

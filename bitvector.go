package bitvec

import (
	"github.com/hupe1980/bitvec/internal/bitcount"
	"github.com/hupe1980/bitvec/internal/wordops"
)

const (
	// WordBits is the number of bits per storage word.
	WordBits = 32

	wordShift = 5
	bitMask   = WordBits - 1
)

// BitVector is a growable bit set backed by 32-bit words.
//
// Bit i lives in word i/32 at position i%32 (0 = least significant). Bits
// beyond the allocated words are implicitly unset. The zero value is an
// empty vector ready to use.
//
// A BitVector is not safe for concurrent use. Indices must be non-negative.
type BitVector struct {
	words []uint32
}

// New creates an empty BitVector holding a single zero word.
func New() *BitVector {
	return &BitVector{words: make([]uint32, 1)}
}

// NewWithCapacity creates an empty BitVector pre-sized so that bits up to
// and including index can be accessed without growth.
func NewWithCapacity(index int) *BitVector {
	return &BitVector{words: make([]uint32, wordIndex(index)+1)}
}

// Of creates a BitVector with the given bits set.
func Of(indices ...int) *BitVector {
	v := New()
	for _, i := range indices {
		v.Set(i)
	}
	return v
}

// Clone returns an independent copy of v.
func (v *BitVector) Clone() *BitVector {
	words := make([]uint32, len(v.words))
	copy(words, v.words)
	return &BitVector{words: words}
}

// CopyFrom replaces the contents of v with an independent copy of src.
func (v *BitVector) CopyFrom(src *BitVector) {
	if v == src {
		return
	}
	if cap(v.words) >= len(src.words) {
		v.words = v.words[:len(src.words)]
	} else {
		v.words = make([]uint32, len(src.words))
	}
	copy(v.words, src.words)
}

func wordIndex(index int) int {
	return index >> wordShift
}

func maskOf(index int) uint32 {
	return uint32(1) << (uint(index) & bitMask)
}

// Get reports whether bit index is set. Indices beyond the allocated storage
// report false.
func (v *BitVector) Get(index int) bool {
	w := wordIndex(index)
	return uint(w) < uint(len(v.words)) && v.words[w]&maskOf(index) != 0
}

// Set sets bit index, growing storage if needed.
func (v *BitVector) Set(index int) {
	w := wordIndex(index)
	v.ensureWord(w)
	v.words[w] |= maskOf(index)
}

// SetValue sets bit index to value.
func (v *BitVector) SetValue(index int, value bool) {
	if value {
		v.Set(index)
	} else {
		v.Clear(index)
	}
}

// Clear clears bit index. Indices beyond the allocated storage are already
// unset, so storage never grows.
func (v *BitVector) Clear(index int) {
	w := wordIndex(index)
	if w >= len(v.words) {
		return
	}
	v.words[w] &^= maskOf(index)
}

// ClearAll clears every bit. The allocated storage is kept.
func (v *BitVector) ClearAll() {
	wordops.Zero(v.words)
}

// Flip toggles bit index, growing storage if needed.
func (v *BitVector) Flip(index int) {
	w := wordIndex(index)
	v.ensureWord(w)
	v.words[w] ^= maskOf(index)
}

// EnsureCapacity grows the storage so that bit index can be addressed. It
// never shrinks. Call it before using the Unchecked methods.
func (v *BitVector) EnsureCapacity(index int) {
	v.ensureWord(wordIndex(index))
}

func (v *BitVector) ensureWord(w int) {
	if w >= len(v.words) {
		v.grow(w + 1)
	}
}

// grow reallocates storage to exactly n words. New words are zero.
func (v *BitVector) grow(n int) {
	words := make([]uint32, n)
	copy(words, v.words)
	v.words = words
}

// GetUnchecked reports whether bit index is set.
//
// The caller must have ensured capacity for index (see EnsureCapacity).
// Out-of-range access panics; build with -tags bitvecdebug for a
// descriptive assertion.
func (v *BitVector) GetUnchecked(index int) bool {
	if debugChecks {
		v.assertCapacity(index)
	}
	return v.words[wordIndex(index)]&maskOf(index) != 0
}

// SetUnchecked sets bit index without growing storage. Same contract as
// GetUnchecked.
func (v *BitVector) SetUnchecked(index int) {
	if debugChecks {
		v.assertCapacity(index)
	}
	v.words[wordIndex(index)] |= maskOf(index)
}

// SetValueUnchecked sets bit index to value without growing storage. Same
// contract as GetUnchecked.
func (v *BitVector) SetValueUnchecked(index int, value bool) {
	if value {
		v.SetUnchecked(index)
	} else {
		v.ClearUnchecked(index)
	}
}

// ClearUnchecked clears bit index without bounds checks. Same contract as
// GetUnchecked.
func (v *BitVector) ClearUnchecked(index int) {
	if debugChecks {
		v.assertCapacity(index)
	}
	v.words[wordIndex(index)] &^= maskOf(index)
}

// FlipUnchecked toggles bit index without growing storage. Same contract as
// GetUnchecked.
func (v *BitVector) FlipUnchecked(index int) {
	if debugChecks {
		v.assertCapacity(index)
	}
	v.words[wordIndex(index)] ^= maskOf(index)
}

// Length returns the logical size: the index of the highest set bit plus
// one, or 0 if no bit is set.
func (v *BitVector) Length() int {
	w := wordops.LastNonZero(v.words)
	if w < 0 {
		return 0
	}
	return w<<wordShift + WordBits - bitcount.LeadingZeros32(v.words[w])
}

// IsEmpty reports whether no bit is set.
func (v *BitVector) IsEmpty() bool {
	return wordops.AllZero(v.words)
}

// Cardinality returns the number of set bits.
func (v *BitVector) Cardinality() int {
	return wordops.PopcountWords(v.words)
}

// Capacity returns the number of addressable bits in the allocated storage.
func (v *BitVector) Capacity() int {
	return len(v.words) << wordShift
}

// Words returns the backing word slice.
//
// This is a low-level accessor for performance-sensitive code. Writes to the
// returned slice are visible through v. The slice is detached from v by any
// operation that grows the storage.
func (v *BitVector) Words() []uint32 {
	return v.words
}

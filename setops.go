package bitvec

import "github.com/hupe1980/bitvec/internal/wordops"

// And intersects v with other in place. Words of v beyond the length of
// other are cleared, since the corresponding bits of other are unset.
func (v *BitVector) And(other *BitVector) {
	n := min(len(v.words), len(other.words))
	wordops.AndWords(v.words[:n], other.words)
	wordops.Zero(v.words[n:])
}

// AndNot clears every bit of v that is set in other.
//
// Only the overlapping words are touched: unlike And, words of v beyond the
// length of other are left as they are.
func (v *BitVector) AndNot(other *BitVector) {
	n := min(len(v.words), len(other.words))
	wordops.AndNotWords(v.words[:n], other.words)
}

// Or sets every bit of v that is set in other. If other is longer, v grows
// to its length and the excess words are copied.
func (v *BitVector) Or(other *BitVector) {
	n := min(len(v.words), len(other.words))
	wordops.OrWords(v.words[:n], other.words)
	v.copyTail(other, n)
}

// Xor toggles every bit of v that is set in other. If other is longer, v
// grows to its length and the excess words are copied.
func (v *BitVector) Xor(other *BitVector) {
	n := min(len(v.words), len(other.words))
	wordops.XorWords(v.words[:n], other.words)
	v.copyTail(other, n)
}

func (v *BitVector) copyTail(other *BitVector, n int) {
	if n < len(other.words) {
		v.grow(len(other.words))
		copy(v.words[n:], other.words[n:])
	}
}

// Intersects reports whether v and other share at least one set bit.
func (v *BitVector) Intersects(other *BitVector) bool {
	n := min(len(v.words), len(other.words))
	return wordops.IntersectsWords(v.words[:n], other.words)
}

// Contains reports whether v is a superset of other, i.e. every bit set in
// other is also set in v.
func (v *BitVector) Contains(other *BitVector) bool {
	if len(other.words) > len(v.words) && !wordops.AllZero(other.words[len(v.words):]) {
		return false
	}
	n := min(len(v.words), len(other.words))
	return wordops.SubsetWords(v.words, other.words[:n])
}

package bitvec

import (
	"strconv"
	"strings"

	"github.com/hupe1980/bitvec/internal/wordops"
)

const (
	hashMultiplier = 127

	// maxStringBits bounds the number of indices rendered by String.
	maxStringBits = 128
)

// Equal reports whether v and other have the same set bits. Allocated but
// zero words do not take part in the comparison.
func (v *BitVector) Equal(other *BitVector) bool {
	if v == other {
		return true
	}
	if other == nil {
		return false
	}

	a, b := v.words, other.words
	if len(a) < len(b) {
		a, b = b, a
	}
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return wordops.AllZero(a[len(b):])
}

// Hash returns a hash of the set bits. Vectors that are Equal have the same
// hash regardless of their allocated capacity.
func (v *BitVector) Hash() uint64 {
	var h uint64
	last := wordops.LastNonZero(v.words)
	for i := 0; i <= last; i++ {
		h = hashMultiplier*h + uint64(v.words[i])
	}
	return h
}

// String renders the cardinality and up to the first 128 set bits, e.g.
// "BitVector[3: {1, 8, 9}]".
func (v *BitVector) String() string {
	card := v.Cardinality()
	if card == 0 {
		return "BitVector[]"
	}

	var sb strings.Builder
	sb.WriteString("BitVector[")
	sb.WriteString(strconv.Itoa(card))
	sb.WriteString(": {")

	n := 0
	for index := range v.All() {
		if n == maxStringBits {
			break
		}
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(index))
		n++
	}

	if card > maxStringBits {
		sb.WriteString(" ...}]")
	} else {
		sb.WriteString("}]")
	}
	return sb.String()
}

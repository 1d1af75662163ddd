package wordops

import "github.com/hupe1980/bitvec/internal/bitcount"

// AndWords performs dst[i] &= src[i].
func AndWords(dst, src []uint32) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

// AndNotWords performs dst[i] &^= src[i].
func AndNotWords(dst, src []uint32) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

// OrWords performs dst[i] |= src[i].
func OrWords(dst, src []uint32) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

// XorWords performs dst[i] ^= src[i].
func XorWords(dst, src []uint32) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

// IntersectsWords reports whether a[i]&b[i] != 0 for any i < len(a).
func IntersectsWords(a, b []uint32) bool {
	b = b[:len(a)]
	for i := range a {
		if a[i]&b[i] != 0 {
			return true
		}
	}
	return false
}

// SubsetWords reports whether every bit of sub[i] is also set in super[i],
// for i < len(sub).
func SubsetWords(super, sub []uint32) bool {
	super = super[:len(sub)]
	for i := range sub {
		if super[i]&sub[i] != sub[i] {
			return false
		}
	}
	return true
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint32) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bitcount.OnesCount32(words[i])
		count += bitcount.OnesCount32(words[i+1])
		count += bitcount.OnesCount32(words[i+2])
		count += bitcount.OnesCount32(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bitcount.OnesCount32(words[i])
	}
	return count
}

// AllZero reports whether every word is zero.
func AllZero(words []uint32) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Zero sets every word to zero.
func Zero(words []uint32) {
	clear(words)
}

// LastNonZero returns the index of the highest non-zero word, or -1.
func LastNonZero(words []uint32) int {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != 0 {
			return i
		}
	}
	return -1
}

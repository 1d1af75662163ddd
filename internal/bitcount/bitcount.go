//go:build !purego

package bitcount

import "math/bits"

const implementation = "native"

// OnesCount32 returns the number of set bits in x.
func OnesCount32(x uint32) int {
	return bits.OnesCount32(x)
}

// LeadingZeros32 returns the number of leading zero bits in x; 32 for x == 0.
func LeadingZeros32(x uint32) int {
	return bits.LeadingZeros32(x)
}

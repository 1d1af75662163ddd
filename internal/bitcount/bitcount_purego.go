//go:build purego

package bitcount

const implementation = "purego"

// OnesCount32 returns the number of set bits in x.
func OnesCount32(x uint32) int {
	return OnesCount32Fallback(x)
}

// LeadingZeros32 returns the number of leading zero bits in x; 32 for x == 0.
func LeadingZeros32(x uint32) int {
	return LeadingZeros32Fallback(x)
}

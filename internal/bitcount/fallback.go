package bitcount

// OnesCount32Fallback counts set bits by summing adjacent bit fields in
// parallel, then folding the per-byte counts with a multiply.
func OnesCount32Fallback(x uint32) int {
	x -= (x >> 1) & 0x55555555
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f
	return int((x * 0x01010101) >> 24)
}

// LeadingZeros32Fallback locates the highest set bit with a binary search
// over 16, 8, 4, 2 and 1 bit halves.
func LeadingZeros32Fallback(x uint32) int {
	if x == 0 {
		return 32
	}

	r := 0
	if x&0xffff0000 != 0 {
		x >>= 16
		r |= 16
	}
	if x&0x0000ff00 != 0 {
		x >>= 8
		r |= 8
	}
	if x&0x000000f0 != 0 {
		x >>= 4
		r |= 4
	}
	if x&0x0000000c != 0 {
		x >>= 2
		r |= 2
	}
	if x&0x00000002 != 0 {
		r |= 1
	}

	return 31 - r
}

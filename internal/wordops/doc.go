// Package wordops provides the word-slice kernels behind the bit vector's
// bulk operations.
//
// All kernels operate on []uint32 and process len(dst) words; callers pass
// slices already trimmed to the overlapping range. Loops are unrolled four
// words at a time.
package wordops

// Package bitcount provides the 32-bit population count and leading zero
// count primitives used by the bit vector.
//
// # Implementations
//
// The default build uses math/bits, which the compiler lowers to POPCNT/LZCNT
// on x86-64 and CNT/CLZ on ARM64. Build with -tags purego to select the
// portable fallbacks instead. The choice is made at build time; there is no
// runtime dispatch on the hot path.
//
// The fallbacks are always compiled (OnesCount32Fallback,
// LeadingZeros32Fallback) so they can be verified against math/bits on any
// build.
package bitcount

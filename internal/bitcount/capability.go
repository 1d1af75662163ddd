package bitcount

// CPU feature flags, set by platform-specific init.
var hasHardwarePopcount bool

// Implementation returns "native" when the primitives compile to math/bits
// and "purego" when the portable fallbacks were selected at build time.
func Implementation() string {
	return implementation
}

// HasHardwarePopcount reports whether the CPU provides a population count
// instruction. With the native implementation math/bits uses it.
func HasHardwarePopcount() bool {
	return hasHardwarePopcount
}

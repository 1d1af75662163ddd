package bitvec

import "errors"

var (
	// ErrIndexOverflow is returned when a set bit cannot be represented in
	// the target index type of a conversion.
	ErrIndexOverflow = errors.New("bit index overflow")
)

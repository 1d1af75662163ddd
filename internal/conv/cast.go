package conv

import (
	"fmt"
	"math"
)

// OverflowError reports a value that cannot be represented in the target type.
type OverflowError struct {
	Value  int
	Target string
}

func (e *OverflowError) Error() string {
	if e.Value < 0 {
		return fmt.Sprintf("integer overflow: %d cannot be converted to %s (negative)", e.Value, e.Target)
	}
	return fmt.Sprintf("integer overflow: %d cannot be converted to %s (too large)", e.Value, e.Target)
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, &OverflowError{Value: v, Target: "uint32"}
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, &OverflowError{Value: v, Target: "uint32"}
	}
	return uint32(v), nil
}

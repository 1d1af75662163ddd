package bitvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitvec/internal/conv"
)

// FromRoaring creates a BitVector holding the values of rb.
//
// Storage is sized once to rb's maximum and filled without further growth.
func FromRoaring(rb *roaring.Bitmap) *BitVector {
	if rb == nil || rb.IsEmpty() {
		return New()
	}

	v := NewWithCapacity(int(rb.Maximum()))
	it := rb.Iterator()
	for it.HasNext() {
		v.SetUnchecked(int(it.Next()))
	}
	return v
}

// ToRoaring returns a roaring bitmap holding the set bits of v.
//
// It returns an error wrapping ErrIndexOverflow if a set bit does not fit
// in uint32.
func (v *BitVector) ToRoaring() (*roaring.Bitmap, error) {
	values := make([]uint32, 0, v.Cardinality())

	for index := range v.All() {
		x, err := conv.IntToUint32(index)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIndexOverflow, err)
		}
		values = append(values, x)
	}

	rb := roaring.New()
	rb.AddMany(values)
	return rb, nil
}

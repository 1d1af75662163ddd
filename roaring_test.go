package bitvec

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRoaring(t *testing.T) {
	rb := roaring.BitmapOf(1, 2, 56, 64, 128, 129, 130, 131, 420)

	v := FromRoaring(rb)
	assert.Equal(t, []int{1, 2, 56, 64, 128, 129, 130, 131, 420}, v.ToSlice(nil))
	assert.Len(t, v.Words(), 420/32+1)

	t.Run("empty", func(t *testing.T) {
		assert.True(t, FromRoaring(roaring.New()).IsEmpty())
		assert.True(t, FromRoaring(nil).IsEmpty())
	})
}

func TestToRoaring(t *testing.T) {
	v := Of(0, 31, 32, 1000, 70000)

	rb, err := v.ToRoaring()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), rb.GetCardinality())
	assert.Equal(t, []uint32{0, 31, 32, 1000, 70000}, rb.ToArray())

	t.Run("round trip", func(t *testing.T) {
		assert.True(t, FromRoaring(rb).Equal(v))
	})

	t.Run("empty", func(t *testing.T) {
		rb, err := New().ToRoaring()
		require.NoError(t, err)
		assert.True(t, rb.IsEmpty())
	})
}

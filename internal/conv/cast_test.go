package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint32(1000)
		assert.NoError(t, err)
		assert.Equal(t, uint32(1000), got)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxInt32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		require.Error(t, err)

		var oe *OverflowError
		require.True(t, errors.As(err, &oe))
		assert.Equal(t, -1, oe.Value)
		assert.Equal(t, "uint32", oe.Target)
		assert.Contains(t, err.Error(), "negative")
	})
}

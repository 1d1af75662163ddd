//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32_TooLarge(t *testing.T) {
	got, err := IntToUint32(math.MaxUint32)
	assert.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), got)

	_, err = IntToUint32(math.MaxUint32 + 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

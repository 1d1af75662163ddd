package bitcount

import (
	"math"
	"math/bits"
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

var edgeValues = []uint32{
	0,
	1,
	2,
	3,
	420,
	0x0000ffff,
	0x00010000,
	0x00ffffff,
	0x01000000,
	math.MaxInt32,      // INT_MAX
	1 << 31,            // INT_MIN
	math.MaxUint32,     // -1
	uint32(0xffffcf63), // -12445
	0xaaaaaaaa,
	0x55555555,
}

func TestOnesCount32Fallback(t *testing.T) {
	t.Run("edge values", func(t *testing.T) {
		for _, x := range edgeValues {
			assert.Equal(t, bits.OnesCount32(x), OnesCount32Fallback(x), "x=%#x", x)
		}
	})

	t.Run("single bits", func(t *testing.T) {
		for i := 0; i < 32; i++ {
			assert.Equal(t, 1, OnesCount32Fallback(1<<i))
			assert.Equal(t, 31, OnesCount32Fallback(^uint32(1<<i)))
		}
	})

	t.Run("random sweep", func(t *testing.T) {
		rng := rand.New(rand.NewSource(4711))
		for i := 0; i < 100000; i++ {
			x := rng.Uint32()
			if OnesCount32Fallback(x) != bits.OnesCount32(x) {
				t.Fatalf("OnesCount32Fallback(%#x) = %d, want %d", x, OnesCount32Fallback(x), bits.OnesCount32(x))
			}
		}
	})
}

func TestLeadingZeros32Fallback(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, 32, LeadingZeros32Fallback(0))
	})

	t.Run("edge values", func(t *testing.T) {
		for _, x := range edgeValues {
			assert.Equal(t, bits.LeadingZeros32(x), LeadingZeros32Fallback(x), "x=%#x", x)
		}
	})

	t.Run("every bit position", func(t *testing.T) {
		for i := 0; i < 32; i++ {
			x := uint32(1) << i
			assert.Equal(t, 31-i, LeadingZeros32Fallback(x))
			// lower bits must not change the result
			assert.Equal(t, 31-i, LeadingZeros32Fallback(x|(x-1)))
		}
	})

	t.Run("random sweep", func(t *testing.T) {
		rng := rand.New(rand.NewSource(4711))
		for i := 0; i < 100000; i++ {
			x := rng.Uint32() >> uint(rng.Intn(32))
			if LeadingZeros32Fallback(x) != bits.LeadingZeros32(x) {
				t.Fatalf("LeadingZeros32Fallback(%#x) = %d, want %d", x, LeadingZeros32Fallback(x), bits.LeadingZeros32(x))
			}
		}
	})
}

func TestPrimitives(t *testing.T) {
	for _, x := range edgeValues {
		assert.Equal(t, bits.OnesCount32(x), OnesCount32(x))
		assert.Equal(t, bits.LeadingZeros32(x), LeadingZeros32(x))
	}
}

func TestCapability(t *testing.T) {
	assert.Contains(t, []string{"native", "purego"}, Implementation())

	if runtime.GOARCH != "amd64" && runtime.GOARCH != "arm64" {
		assert.False(t, HasHardwarePopcount())
	}
}

func BenchmarkOnesCount32(b *testing.B) {
	b.Run("native", func(b *testing.B) {
		n := 0
		for i := 0; i < b.N; i++ {
			n += bits.OnesCount32(uint32(i))
		}
		_ = n
	})

	b.Run("fallback", func(b *testing.B) {
		n := 0
		for i := 0; i < b.N; i++ {
			n += OnesCount32Fallback(uint32(i))
		}
		_ = n
	})
}

func BenchmarkLeadingZeros32(b *testing.B) {
	b.Run("native", func(b *testing.B) {
		n := 0
		for i := 0; i < b.N; i++ {
			n += bits.LeadingZeros32(uint32(i))
		}
		_ = n
	})

	b.Run("fallback", func(b *testing.B) {
		n := 0
		for i := 0; i < b.N; i++ {
			n += LeadingZeros32Fallback(uint32(i))
		}
		_ = n
	})
}

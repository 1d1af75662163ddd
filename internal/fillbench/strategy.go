package fillbench

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitvec"
)

// Strategy identifies a way of enumerating set bits.
type Strategy uint8

const (
	// ForEachBit uses BitVector.ForEachBit.
	ForEachBit Strategy = iota
	// Iterator uses the BitVector.Iterator cursor.
	Iterator
	// Seq ranges over BitVector.All.
	Seq
	// Scan probes every index with BitVector.Get.
	Scan
	// Roaring iterates a roaring bitmap holding the same bits.
	Roaring

	numStrategies
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case ForEachBit:
		return "foreach"
	case Iterator:
		return "iterator"
	case Seq:
		return "seq"
	case Scan:
		return "scan"
	case Roaring:
		return "roaring"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a string into a Strategy value.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "foreach":
		return ForEachBit, true
	case "iterator":
		return Iterator, true
	case "seq":
		return Seq, true
	case "scan":
		return Scan, true
	case "roaring":
		return Roaring, true
	default:
		return ForEachBit, false
	}
}

// AllStrategies returns every Strategy in declaration order.
func AllStrategies() []Strategy {
	out := make([]Strategy, 0, numStrategies)
	for s := ForEachBit; s < numStrategies; s++ {
		out = append(out, s)
	}
	return out
}

// input is the data every strategy of one fill rate enumerates.
type input struct {
	bv       *bitvec.BitVector
	rb       *roaring.Bitmap
	maxCount int
}

// enumerators append the set bits of an input to out[:0].
var enumerators = [numStrategies]func(in *input, out []int) []int{
	ForEachBit: func(in *input, out []int) []int {
		return in.bv.ToSlice(out)
	},
	Iterator: func(in *input, out []int) []int {
		out = out[:0]
		it := in.bv.Iterator()
		for it.HasNext() {
			out = append(out, it.Next())
		}
		return out
	},
	Seq: func(in *input, out []int) []int {
		out = out[:0]
		for i := range in.bv.All() {
			out = append(out, i)
		}
		return out
	},
	Scan: func(in *input, out []int) []int {
		out = out[:0]
		for i := 0; i < in.maxCount; i++ {
			if in.bv.Get(i) {
				out = append(out, i)
			}
		}
		return out
	},
	Roaring: func(in *input, out []int) []int {
		out = out[:0]
		in.rb.Iterate(func(x uint32) bool {
			out = append(out, int(x))
			return true
		})
		return out
	},
}

func (s Strategy) enumerate(in *input, out []int) []int {
	return enumerators[s](in, out)
}

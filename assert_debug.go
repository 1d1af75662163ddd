//go:build bitvecdebug

package bitvec

import "fmt"

const debugChecks = true

func (v *BitVector) assertCapacity(index int) {
	if index < 0 || wordIndex(index) >= len(v.words) {
		panic(fmt.Sprintf("bitvec: unchecked access to bit %d beyond capacity %d", index, v.Capacity()))
	}
}

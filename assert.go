//go:build !bitvecdebug

package bitvec

const debugChecks = false

func (v *BitVector) assertCapacity(int) {}

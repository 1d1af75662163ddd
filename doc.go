// Package bitvec provides BitVector, a growable bit set backed by 32-bit
// words.
//
// BitVector stores boolean flags indexed by non-negative int position. It
// suits component masks in entity-component systems, membership tests and
// other compact boolean arrays that need fast bulk operations.
//
// # Quick Start
//
//	v := bitvec.Of(1, 8, 9)
//	v.Set(420)         // grows storage as needed
//	v.Get(8)           // true
//	v.Get(1 << 20)     // false, reads never grow
//	v.Cardinality()    // 4
//	v.Length()         // 421
//
// # Set Algebra
//
// And, AndNot, Or and Xor modify the receiver in place; the argument is read
// only. Bits beyond a vector's allocated words are treated as unset:
//
//	a := bitvec.Of(0, 1, 2, 3, 120, 130)
//	b := bitvec.Of(0, 1, 2, 120, 121, 122, 123, 130)
//
//	x := a.Clone()
//	x.And(b) // {0, 1, 2, 120, 130}
//
// And clears receiver words past the end of its argument. AndNot only
// touches the overlapping words.
//
// Intersects and Contains (superset test) never modify either vector.
//
// # Iteration
//
// ForEachBit is the fastest way to visit set bits. It isolates the lowest set
// bit of each word (w & -w) instead of probing every index:
//
//	v.ForEachBit(func(i int) {
//	    fmt.Println(i)
//	})
//
// All returns an iter.Seq for range-over-func loops with early exit, and
// Iterator returns a HasNext/Next cursor.
//
// # Checked and Unchecked Access
//
// Get, Set, SetValue, Clear and Flip check bounds: writes grow the storage,
// out-of-range reads return false. The ...Unchecked variants skip bounds
// handling for hot loops. The caller must call EnsureCapacity for the largest
// index first:
//
//	v := bitvec.New()
//	v.EnsureCapacity(4095)
//	for i := 0; i < 4096; i += 3 {
//	    v.SetUnchecked(i)
//	}
//
// Violating this contract panics with an index out of range error. Build with
// -tags bitvecdebug to get an explicit assertion message instead.
//
// # Equality
//
// Equal and Hash compare logical content: trailing zero words left by
// EnsureCapacity or ClearAll do not make vectors unequal.
//
// # Concurrency
//
// BitVector is not synchronized. Use Clone to hand a copy to another
// goroutine.
package bitvec

// Package bitvec provides dense, fixed-length bit vectors and bit sets over
// pluggable block storage.
//
// # Quick Start
//
//	v, _ := bitvec.New(130)           // 130 bits on 64-bit words
//	changed, _ := v.Set(7)            // true: bit 7 flipped 0 -> 1
//	changed, _ = v.SetRange(60, 70)   // crosses a block boundary
//	ok, _ := v.Test(65)               // true
//
//	a, _ := bitvec.SetOf(130, []int{1, 2, 3})
//	b, _ := bitvec.SetOf(130, []int{3, 4})
//	u, _ := a.Union(b)                // new set {1, 2, 3, 4}
//	a.InPlaceSubtract(b)              // a is now {1, 2}
//
// # Storage Media
//
// A vector is written once against the blockstore.Store interface and works
// on any medium:
//
//	bitvec.New(n)                                          // []uint64 words (default)
//	bitvec.New(n, bitvec.WithMedium(bitvec.MediumBuffer),
//	    bitvec.WithBlockWidth(16))                         // raw 16-bit block buffer
//	bitvec.New(n, bitvec.WithMedium(bitvec.MediumMapped))  // off-heap anonymous mapping
//	bitvec.New(n, bitvec.WithMedium(bitvec.MediumBytes))   // byte string
//	bitvec.NewWithStore(n, myStore)                        // custom medium
//
// Vectors on MediumMapped hold an OS mapping and must be closed.
//
// # Tail Masking
//
// The bit length need not be a multiple of the block width. Bits of the last
// block at or above the bit length are masked to zero on every block read and
// every block write, so they can neither be observed nor set.
//
// # Errors
//
// Out-of-range positions, block indexes and range endpoints return a
// *RangeError (errors.Is ErrOutOfRange). Binary set operations on operands of
// different bit length or block width return a *MismatchError (errors.Is
// ErrLengthMismatch). Both are returned before any mutation.
//
// # Ownership
//
// Vectors and sets are single-owner values with no internal locking. Clone
// produces a fully independent deep copy.
package bitvec

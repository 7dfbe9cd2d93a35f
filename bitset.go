package bitvec

import (
	"github.com/hupe1980/bitvec/blockstore"
)

// BitSet is a dense set of integers in [0, BitLength()) with set algebra.
//
// Binary operations combine blocks by index and therefore require both
// operands to have the same bit length and block width; otherwise they
// return a *MismatchError before touching either set. A nil operand is
// reported the same way.
//
// Every combinator has a pure form (Union, Intersect, ...) returning a new
// set and an InPlace form returning the receiver itself.
type BitSet struct {
	*BitVector
}

// NewSet allocates an empty set over [0, bitLength).
func NewSet(bitLength int, opts ...Option) (*BitSet, error) {
	v, err := New(bitLength, opts...)
	if err != nil {
		return nil, err
	}
	return &BitSet{BitVector: v}, nil
}

// NewSetWithStore wraps store as a set over [0, bitLength). See NewWithStore.
func NewSetWithStore(bitLength int, store blockstore.Store, opts ...Option) (*BitSet, error) {
	v, err := NewWithStore(bitLength, store, opts...)
	if err != nil {
		return nil, err
	}
	return &BitSet{BitVector: v}, nil
}

// SetOf returns a set over [0, bitLength) holding the given members.
func SetOf(bitLength int, members []int, opts ...Option) (*BitSet, error) {
	s, err := NewSet(bitLength, opts...)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if _, err := s.Set(m); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

// Clone returns a deep copy of the set.
func (s *BitSet) Clone() (*BitSet, error) {
	v, err := s.BitVector.Clone()
	if err != nil {
		return nil, err
	}
	return &BitSet{BitVector: v}, nil
}

// Cardinality returns the number of members.
func (s *BitSet) Cardinality() int {
	return s.Count()
}

// Members returns the members in ascending order.
func (s *BitSet) Members() []int {
	out := make([]int, 0, s.Count())
	s.EachBlock(func(b uint64, i int) Action {
		for off := 0; b != 0; off, b = off+1, b>>1 {
			if b&1 != 0 {
				out = append(out, i*s.width+off)
			}
		}
		return Continue
	})
	return out
}

func (s *BitSet) checkMatch(op string, o *BitSet) error {
	otherLength, otherWidth := -1, -1
	if o != nil && o.BitVector != nil {
		otherLength, otherWidth = o.bitLength, o.width
	}
	if s.bitLength == otherLength && s.width == otherWidth {
		return nil
	}
	err := &MismatchError{
		Op:              op,
		BitLength:       s.bitLength,
		OtherBitLength:  otherLength,
		BlockWidth:      s.width,
		OtherBlockWidth: otherWidth,
	}
	s.logger.LogRejected(op, err)
	return err
}

// all reports whether pred holds for every block pair, stopping at the first
// counterexample.
func (s *BitSet) all(o *BitSet, pred func(a, b uint64) bool) bool {
	return s.EachBlock(func(a uint64, i int) Action {
		if !pred(a, o.block(i)) {
			return Stop
		}
		return Continue
	})
}

// combine replaces every block of s with fn(block, other block).
func (s *BitSet) combine(o *BitSet, fn func(a, b uint64) uint64) {
	s.EachBlock(func(a uint64, i int) Action {
		return Replace(fn(a, o.block(i)))
	})
}

// IsEmpty reports whether the set has no members.
func (s *BitSet) IsEmpty() bool {
	return s.EachBlock(func(b uint64, _ int) Action {
		if b != 0 {
			return Stop
		}
		return Continue
	})
}

// IsDisjoint reports whether s and o have no member in common.
func (s *BitSet) IsDisjoint(o *BitSet) (bool, error) {
	if err := s.checkMatch("is disjoint", o); err != nil {
		return false, err
	}
	return s.all(o, func(a, b uint64) bool { return a&b == 0 }), nil
}

// Contains reports whether every member of o is a member of s.
func (s *BitSet) Contains(o *BitSet) (bool, error) {
	if err := s.checkMatch("contains", o); err != nil {
		return false, err
	}
	return s.all(o, func(a, b uint64) bool { return b^(b&a) == 0 }), nil
}

// Equals reports whether s and o have the same members.
func (s *BitSet) Equals(o *BitSet) (bool, error) {
	if err := s.checkMatch("equals", o); err != nil {
		return false, err
	}
	return s.all(o, func(a, b uint64) bool { return a == b }), nil
}

func or(a, b uint64) uint64     { return a | b }
func and(a, b uint64) uint64    { return a & b }
func andNot(a, b uint64) uint64 { return a ^ (a & b) }
func xor(a, b uint64) uint64    { return a ^ b }

// pure applies fn to a copy of s.
func (s *BitSet) pure(op string, o *BitSet, fn func(a, b uint64) uint64) (*BitSet, error) {
	if err := s.checkMatch(op, o); err != nil {
		return nil, err
	}
	c, err := s.Clone()
	if err != nil {
		return nil, err
	}
	c.combine(o, fn)
	return c, nil
}

// inPlace applies fn to s itself.
func (s *BitSet) inPlace(op string, o *BitSet, fn func(a, b uint64) uint64) (*BitSet, error) {
	if err := s.checkMatch(op, o); err != nil {
		return nil, err
	}
	s.combine(o, fn)
	return s, nil
}

// Union returns a new set with the members of s or o.
func (s *BitSet) Union(o *BitSet) (*BitSet, error) {
	return s.pure("union", o, or)
}

// InPlaceUnion adds the members of o to s and returns s.
func (s *BitSet) InPlaceUnion(o *BitSet) (*BitSet, error) {
	return s.inPlace("union", o, or)
}

// Intersect returns a new set with the members of both s and o.
func (s *BitSet) Intersect(o *BitSet) (*BitSet, error) {
	return s.pure("intersect", o, and)
}

// InPlaceIntersect keeps only the members of s also in o and returns s.
func (s *BitSet) InPlaceIntersect(o *BitSet) (*BitSet, error) {
	return s.inPlace("intersect", o, and)
}

// Subtract returns a new set with the members of s not in o.
func (s *BitSet) Subtract(o *BitSet) (*BitSet, error) {
	return s.pure("subtract", o, andNot)
}

// InPlaceSubtract removes the members of o from s and returns s.
func (s *BitSet) InPlaceSubtract(o *BitSet) (*BitSet, error) {
	return s.inPlace("subtract", o, andNot)
}

// SymmetricDifference returns a new set with the members in exactly one of s and o.
func (s *BitSet) SymmetricDifference(o *BitSet) (*BitSet, error) {
	return s.pure("symmetric difference", o, xor)
}

// InPlaceSymmetricDifference keeps the members in exactly one of s and o and returns s.
func (s *BitSet) InPlaceSymmetricDifference(o *BitSet) (*BitSet, error) {
	return s.inPlace("symmetric difference", o, xor)
}

// Complement returns a new set with every position of [0, BitLength()) not in s.
func (s *BitSet) Complement() (*BitSet, error) {
	c, err := s.Clone()
	if err != nil {
		return nil, err
	}
	return c.InPlaceComplement(), nil
}

// InPlaceComplement flips every position of s and returns s. Positions past
// the bit length stay clear.
func (s *BitSet) InPlaceComplement() *BitSet {
	s.EachBlock(func(b uint64, _ int) Action {
		return Replace(^b)
	})
	return s
}

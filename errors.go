package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a position, block index or range endpoint
	// lies outside the vector.
	ErrOutOfRange = errors.New("bitvec: out of range")

	// ErrLengthMismatch is returned when the operands of a binary set
	// operation are not structurally identical.
	ErrLengthMismatch = errors.New("bitvec: bit length mismatch")

	// ErrStoreSize is returned when a caller-supplied store does not have
	// exactly the number of blocks the bit length needs.
	ErrStoreSize = errors.New("bitvec: store size does not match bit length")
)

// RangeError reports an index outside [0, Limit).
//
// It satisfies errors.Is(err, ErrOutOfRange).
type RangeError struct {
	Op    string
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bitvec: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Limit)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// MismatchError reports two operands whose bit lengths or block widths differ.
//
// It satisfies errors.Is(err, ErrLengthMismatch) and, as a structural
// bounds violation, errors.Is(err, ErrOutOfRange). OtherBitLength and
// OtherBlockWidth are -1 when the other operand is nil.
type MismatchError struct {
	Op              string
	BitLength       int
	OtherBitLength  int
	BlockWidth      int
	OtherBlockWidth int
}

func (e *MismatchError) Error() string {
	if e.OtherBitLength < 0 {
		return fmt.Sprintf("bitvec: %s: nil operand", e.Op)
	}
	if e.BitLength != e.OtherBitLength {
		return fmt.Sprintf("bitvec: %s: bit length mismatch: %d != %d", e.Op, e.BitLength, e.OtherBitLength)
	}
	return fmt.Sprintf("bitvec: %s: block width mismatch: %d != %d", e.Op, e.BlockWidth, e.OtherBlockWidth)
}

func (e *MismatchError) Unwrap() error { return ErrLengthMismatch }

// Is lets a mismatch match ErrOutOfRange as well.
func (e *MismatchError) Is(target error) bool {
	return target == ErrOutOfRange
}

package blockstore

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBlockWidth is returned for block widths other than 8, 16, 32 or 64.
	ErrInvalidBlockWidth = errors.New("blockstore: invalid block width")
	// ErrInvalidBlockCount is returned for negative block counts and for
	// block counts whose backing storage would exceed MaxBytes.
	ErrInvalidBlockCount = errors.New("blockstore: invalid block count")
)

// Store is a fixed-length array of fixed-width unsigned integer blocks.
//
// Block indexes must satisfy 0 <= i < BlockCount(). An index outside that
// range is a caller bug and panics; it is never truncated or wrapped.
// Values are raw: no masking happens beyond discarding bits at or above
// BlockWidth() on write.
type Store interface {
	// BlockWidth returns the number of bits per block.
	BlockWidth() int
	// BlockCount returns the number of blocks. It never changes.
	BlockCount() int
	// ReadBlock returns the block at index i.
	ReadBlock(i int) uint64
	// WriteBlock stores v at index i.
	WriteBlock(i int, v uint64)
	// Duplicate returns an independent deep copy. The copy never shares
	// backing storage with the receiver.
	Duplicate() (Store, error)
}

// MaxBytes is the largest backing storage, in bytes, a medium allocates.
const MaxBytes = min(math.MaxInt, 1<<48)

// BlocksFor returns the minimum number of width-bit blocks holding bitLength bits.
func BlocksFor(bitLength, width int) int {
	if bitLength <= 0 || width <= 0 {
		return 0
	}
	n := bitLength / width
	if bitLength%width != 0 {
		n++
	}
	return n
}

// CheckCount reports whether blocks blocks of width bits can be allocated:
// blocks must not be negative and blocks*width/8 must not exceed MaxBytes.
// width must be valid.
func CheckCount(blocks, width int) error {
	if blocks < 0 || blocks > MaxBytes/(width/8) {
		return fmt.Errorf("%w: %d blocks of %d bits", ErrInvalidBlockCount, blocks, width)
	}
	return nil
}

// ValidWidth reports whether width is a supported block width.
func ValidWidth(width int) bool {
	switch width {
	case 8, 16, 32, 64:
		return true
	}
	return false
}

func checkWidth(width int) error {
	if !ValidWidth(width) {
		return fmt.Errorf("%w: %d", ErrInvalidBlockWidth, width)
	}
	return nil
}

func checkIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(fmt.Sprintf("blockstore: block index %d out of range [0, %d)", i, n))
	}
}

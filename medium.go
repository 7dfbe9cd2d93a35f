package bitvec

import (
	"fmt"

	"github.com/hupe1980/bitvec/blockstore"
)

// Medium selects the built-in storage behind a vector.
type Medium int

const (
	// MediumWords stores 64-bit blocks in a []uint64.
	MediumWords Medium = iota
	// MediumBuffer stores blocks in an aligned raw byte buffer.
	MediumBuffer
	// MediumMapped stores blocks in an anonymous memory mapping. Vectors on
	// this medium must be closed.
	MediumMapped
	// MediumBytes stores 8-bit blocks in a byte string.
	MediumBytes
)

func (m Medium) String() string {
	switch m {
	case MediumWords:
		return "words"
	case MediumBuffer:
		return "buffer"
	case MediumMapped:
		return "mapped"
	case MediumBytes:
		return "bytes"
	default:
		return fmt.Sprintf("Medium(%d)", int(m))
	}
}

// width returns the block width m uses given the requested buffer width.
func (m Medium) width(requested int) int {
	switch m {
	case MediumBuffer, MediumMapped:
		return requested
	case MediumBytes:
		return 8
	default:
		return 64
	}
}

// newStore allocates a zeroed store of the given medium for bitLength bits.
func newStore(m Medium, bitLength, width int) (blockstore.Store, error) {
	if !blockstore.ValidWidth(m.width(width)) {
		return nil, fmt.Errorf("%w: %d", blockstore.ErrInvalidBlockWidth, width)
	}
	blocks := blockstore.BlocksFor(bitLength, m.width(width))
	if err := blockstore.CheckCount(blocks, m.width(width)); err != nil {
		return nil, err
	}

	switch m {
	case MediumWords:
		return blockstore.NewWords(blocks), nil
	case MediumBuffer:
		return blockstore.NewBuffer(blocks, width)
	case MediumMapped:
		return blockstore.NewMapped(blocks, width)
	case MediumBytes:
		return blockstore.NewBytes(blocks), nil
	default:
		return nil, fmt.Errorf("bitvec: unknown medium %v", m)
	}
}

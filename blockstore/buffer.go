package blockstore

import (
	"encoding/binary"

	"github.com/hupe1980/bitvec/internal/mem"
)

// Buffer stores blocks in a raw little-endian byte buffer. The block width is
// chosen at construction and may be 8, 16, 32 or 64 bits.
type Buffer struct {
	data   []byte
	width  int
	blocks int
}

// NewBuffer returns a zeroed Buffer of blocks blocks of width bits each,
// allocated on a cache-line boundary.
func NewBuffer(blocks, width int) (*Buffer, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if err := CheckCount(blocks, width); err != nil {
		return nil, err
	}
	return &Buffer{
		data:   mem.AllocAligned(blocks * (width / 8)),
		width:  width,
		blocks: blocks,
	}, nil
}

// newBufferOver wraps data, which must hold at least blocks*width/8 bytes.
func newBufferOver(data []byte, blocks, width int) *Buffer {
	return &Buffer{data: data[:blocks*(width/8)], width: width, blocks: blocks}
}

func (b *Buffer) BlockWidth() int { return b.width }

func (b *Buffer) BlockCount() int { return b.blocks }

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) ReadBlock(i int) uint64 {
	checkIndex(i, b.blocks)
	switch b.width {
	case 8:
		return uint64(b.data[i])
	case 16:
		return uint64(binary.LittleEndian.Uint16(b.data[i*2:]))
	case 32:
		return uint64(binary.LittleEndian.Uint32(b.data[i*4:]))
	default:
		return binary.LittleEndian.Uint64(b.data[i*8:])
	}
}

func (b *Buffer) WriteBlock(i int, v uint64) {
	checkIndex(i, b.blocks)
	switch b.width {
	case 8:
		b.data[i] = byte(v)
	case 16:
		binary.LittleEndian.PutUint16(b.data[i*2:], uint16(v))
	case 32:
		binary.LittleEndian.PutUint32(b.data[i*4:], uint32(v))
	default:
		binary.LittleEndian.PutUint64(b.data[i*8:], v)
	}
}

func (b *Buffer) Duplicate() (Store, error) {
	dup, err := NewBuffer(b.blocks, b.width)
	if err != nil {
		return nil, err
	}
	copy(dup.data, b.data)
	return dup, nil
}

package blockstore

import (
	"github.com/hupe1980/bitvec/internal/mmap"
)

// Mapped is a Buffer whose bytes live in an anonymous memory mapping outside
// the Go heap. It must be closed to release the mapping; a closed Mapped
// panics on block access.
type Mapped struct {
	*Buffer
	mapping *mmap.Mapping
}

// NewMapped maps a zeroed buffer of blocks blocks of width bits each.
func NewMapped(blocks, width int) (*Mapped, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if err := CheckCount(blocks, width); err != nil {
		return nil, err
	}

	size := blocks * (width / 8)
	if size == 0 {
		return &Mapped{Buffer: &Buffer{width: width}}, nil
	}

	m, err := mmap.Anon(size)
	if err != nil {
		return nil, err
	}
	// Bit vectors are addressed block by block, rarely front to back.
	if err := m.Advise(mmap.AccessRandom); err != nil {
		_ = m.Close()
		return nil, err
	}

	return &Mapped{
		Buffer:  newBufferOver(m.Bytes(), blocks, width),
		mapping: m,
	}, nil
}

// Duplicate maps a new region and copies the blocks into it.
func (m *Mapped) Duplicate() (Store, error) {
	dup, err := NewMapped(m.blocks, m.width)
	if err != nil {
		return nil, err
	}
	copy(dup.data, m.data)
	return dup, nil
}

// Close unmaps the buffer. It is idempotent.
func (m *Mapped) Close() error {
	if m.mapping == nil {
		return nil
	}
	m.data = nil
	m.blocks = 0
	return m.mapping.Close()
}

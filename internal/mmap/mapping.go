package mmap

import (
	"fmt"
	"sync/atomic"
)

// Mapping is an anonymous read-write memory mapping.
// It owns the mapped bytes and unmaps them on Close.
type Mapping struct {
	data   []byte
	closed atomic.Bool
	unmap  func([]byte) error
}

// Anon maps size bytes of zeroed anonymous memory.
func Anon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	data, unmap, err := osMapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("mmap: anonymous mapping of %d bytes: %w", size, err)
	}

	return &Mapping{data: data, unmap: unmap}, nil
}

// Bytes returns the mapped memory, or nil once the mapping is closed.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the mapping length in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Closed reports whether Close has been called.
func (m *Mapping) Closed() bool {
	return m.closed.Load()
}

// Advise passes an access hint for the whole mapping to the kernel.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	return osAdvise(m.data, pattern)
}

// Close unmaps the memory. Calling Close more than once is a no-op.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	data := m.data
	m.data = nil
	if m.unmap == nil || data == nil {
		return nil
	}
	return m.unmap(data)
}

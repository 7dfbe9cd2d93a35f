package blockstore

// Bytes stores 8-bit blocks in a byte string.
type Bytes struct {
	b []byte
}

// NewBytes returns a zeroed Bytes store with the given number of blocks.
// A negative count yields an empty store.
func NewBytes(blocks int) *Bytes {
	return &Bytes{b: make([]byte, max(blocks, 0))}
}

// BytesFrom returns a Bytes store holding a copy of b.
func BytesFrom(b []byte) *Bytes {
	s := NewBytes(len(b))
	copy(s.b, b)
	return s
}

func (s *Bytes) BlockWidth() int { return 8 }

func (s *Bytes) BlockCount() int { return len(s.b) }

func (s *Bytes) ReadBlock(i int) uint64 {
	checkIndex(i, len(s.b))
	return uint64(s.b[i])
}

func (s *Bytes) WriteBlock(i int, v uint64) {
	checkIndex(i, len(s.b))
	s.b[i] = byte(v)
}

func (s *Bytes) Duplicate() (Store, error) {
	return BytesFrom(s.b), nil
}

// String returns the blocks as a byte string.
func (s *Bytes) String() string {
	return string(s.b)
}

package bitvec

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/hupe1980/bitvec/blockstore"
	"github.com/hupe1980/bitvec/internal/blockmask"
)

// BitVector is a fixed-length sequence of bits over a block store.
//
// Bits beyond BitLength in the last block are never observable: every block
// read and every block write masks them to zero.
//
// A BitVector has a single owner and is not safe for concurrent use.
type BitVector struct {
	store     blockstore.Store
	bitLength int
	blocks    int
	width     int
	full      uint64 // all bits of one block
	tail      uint64 // valid bits of the last block
	logger    *Logger
}

// New allocates a zeroed vector of bitLength bits on the configured medium.
func New(bitLength int, opts ...Option) (*BitVector, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if bitLength < 0 {
		err := &RangeError{Op: "new", Index: bitLength, Limit: 0}
		o.logger.LogRejected("new", err)
		return nil, err
	}

	store, err := newStore(o.medium, bitLength, o.blockWidth)
	if err != nil {
		o.logger.LogRejected("new", err)
		return nil, err
	}

	return newVector(bitLength, store, o.medium.String(), o.logger), nil
}

// NewWithStore wraps store as a vector of bitLength bits. The store must have
// exactly blockstore.BlocksFor(bitLength, store.BlockWidth()) blocks; the
// vector takes ownership of it. Medium options are ignored.
func NewWithStore(bitLength int, store blockstore.Store, opts ...Option) (*BitVector, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if bitLength < 0 {
		err := &RangeError{Op: "new", Index: bitLength, Limit: 0}
		o.logger.LogRejected("new", err)
		return nil, err
	}
	if !blockstore.ValidWidth(store.BlockWidth()) {
		err := fmt.Errorf("%w: %d", blockstore.ErrInvalidBlockWidth, store.BlockWidth())
		o.logger.LogRejected("new", err)
		return nil, err
	}
	if want := blockstore.BlocksFor(bitLength, store.BlockWidth()); store.BlockCount() != want {
		err := fmt.Errorf("%w: %d bits need %d blocks, store has %d", ErrStoreSize, bitLength, want, store.BlockCount())
		o.logger.LogRejected("new", err)
		return nil, err
	}

	return newVector(bitLength, store, fmt.Sprintf("%T", store), o.logger), nil
}

func newVector(bitLength int, store blockstore.Store, medium string, logger *Logger) *BitVector {
	width := store.BlockWidth()
	v := &BitVector{
		store:     store,
		bitLength: bitLength,
		blocks:    store.BlockCount(),
		width:     width,
		full:      blockmask.Full(width),
		tail:      blockmask.Tail(bitLength, width),
		logger:    logger.WithBitLength(bitLength).WithMedium(medium, width),
	}
	v.logger.LogAllocated(v.blocks)
	return v
}

// BitLength returns the number of addressable bits.
func (v *BitVector) BitLength() int { return v.bitLength }

// BlockCount returns the number of storage blocks.
func (v *BitVector) BlockCount() int { return v.blocks }

// BlockWidth returns the number of bits per block.
func (v *BitVector) BlockWidth() int { return v.width }

// BlockIndex returns the index of the block holding bit pos.
func (v *BitVector) BlockIndex(pos int) int { return pos / v.width }

// BlockOffset returns the offset of bit pos inside its block.
func (v *BitVector) BlockOffset(pos int) int { return pos % v.width }

func (v *BitVector) checkPos(op string, pos int) error {
	if pos < 0 || pos >= v.bitLength {
		err := &RangeError{Op: op, Index: pos, Limit: v.bitLength}
		v.logger.LogRejected(op, err)
		return err
	}
	return nil
}

func (v *BitVector) checkBlock(op string, i int) error {
	if i < 0 || i >= v.blocks {
		err := &RangeError{Op: op, Index: i, Limit: v.blocks}
		v.logger.LogRejected(op, err)
		return err
	}
	return nil
}

// mask returns the mask for block i: the tail mask on the last block, the
// full block otherwise.
func (v *BitVector) mask(i int) uint64 {
	if i == v.blocks-1 {
		return v.tail
	}
	return v.full
}

// block reads block i with all masks applied. i must be valid.
func (v *BitVector) block(i int) uint64 {
	return v.store.ReadBlock(i) & v.mask(i)
}

// writeBlock masks x and stores it if it differs from the raw stored value.
// i must be valid.
func (v *BitVector) writeBlock(i int, x uint64) bool {
	x &= v.mask(i)
	if v.store.ReadBlock(i) == x {
		return false
	}
	v.store.WriteBlock(i, x)
	return true
}

// Set sets bit pos. It reports whether the bit was previously 0.
func (v *BitVector) Set(pos int) (bool, error) {
	if err := v.checkPos("set", pos); err != nil {
		return false, err
	}
	i, bit := pos/v.width, blockmask.Bit(pos%v.width)
	b := v.store.ReadBlock(i)
	if b&bit != 0 {
		return false, nil
	}
	v.store.WriteBlock(i, b|bit)
	return true, nil
}

// Unset clears bit pos. It reports whether the bit was previously 1.
func (v *BitVector) Unset(pos int) (bool, error) {
	if err := v.checkPos("unset", pos); err != nil {
		return false, err
	}
	i, bit := pos/v.width, blockmask.Bit(pos%v.width)
	b := v.store.ReadBlock(i)
	if b&bit == 0 {
		return false, nil
	}
	v.store.WriteBlock(i, b&^bit)
	return true, nil
}

// Test reports whether bit pos is set.
func (v *BitVector) Test(pos int) (bool, error) {
	if err := v.checkPos("test", pos); err != nil {
		return false, err
	}
	return v.store.ReadBlock(pos/v.width)&blockmask.Bit(pos%v.width) != 0, nil
}

// GetBlock returns block i. Bits of the last block at or above the bit
// length are always reported as zero.
func (v *BitVector) GetBlock(i int) (uint64, error) {
	if err := v.checkBlock("get block", i); err != nil {
		return 0, err
	}
	return v.block(i), nil
}

// SetBlock stores x as block i after masking it like GetBlock, so bits past
// the bit length can never be set. It reports whether the stored value changed.
func (v *BitVector) SetBlock(i int, x uint64) (bool, error) {
	if err := v.checkBlock("set block", i); err != nil {
		return false, err
	}
	return v.writeBlock(i, x), nil
}

// EachBlock calls fn for every block in ascending index order, exactly once.
// A Replace action stores its value with SetBlock semantics; Stop ends the
// iteration early. EachBlock reports whether every block was visited.
func (v *BitVector) EachBlock(fn func(block uint64, index int) Action) bool {
	for i := 0; i < v.blocks; i++ {
		a := fn(v.block(i), i)
		switch a.kind {
		case actionStop:
			return false
		case actionReplace:
			v.writeBlock(i, a.value)
		}
	}
	return true
}

// SetRange sets every bit in the inclusive range [from, to]. It reports
// whether at least one bit changed from 0 to 1.
//
// Both endpoints must be valid positions. An inverted range (from > to) is a
// no-op that reports false.
func (v *BitVector) SetRange(from, to int) (bool, error) {
	return v.applyRange("set range", from, to, true)
}

// UnsetRange clears every bit in the inclusive range [from, to]. It reports
// whether at least one bit changed from 1 to 0. Validation and the inverted
// range rule match SetRange.
func (v *BitVector) UnsetRange(from, to int) (bool, error) {
	return v.applyRange("unset range", from, to, false)
}

func (v *BitVector) applyRange(op string, from, to int, set bool) (bool, error) {
	if err := v.checkPos(op, from); err != nil {
		return false, err
	}
	if err := v.checkPos(op, to); err != nil {
		return false, err
	}
	if from > to {
		return false, nil
	}
	if from == to {
		if set {
			return v.Set(from)
		}
		return v.Unset(from)
	}

	startBlock, endBlock := from/v.width, to/v.width
	fromOff, toOff := from%v.width, to%v.width

	if startBlock == endBlock {
		return v.applyMask(startBlock, blockmask.Between(fromOff, toOff, v.width), set), nil
	}

	changed := v.applyMask(startBlock, blockmask.From(fromOff, v.width), set)
	if v.applyMask(endBlock, blockmask.To(toOff, v.width), set) {
		changed = true
	}
	for i := startBlock + 1; i < endBlock; i++ {
		if v.applyMask(i, v.full, set) {
			changed = true
		}
	}
	return changed, nil
}

// applyMask ORs (set) or clears (!set) m in block i and reports a change.
func (v *BitVector) applyMask(i int, m uint64, set bool) bool {
	old := v.store.ReadBlock(i) & v.full
	next := old | m
	if !set {
		next = old &^ m
	}
	if next == old {
		return false
	}
	v.store.WriteBlock(i, next)
	return true
}

// Count returns the number of set bits.
func (v *BitVector) Count() int {
	n := 0
	for i := 0; i < v.blocks; i++ {
		n += bits.OnesCount64(v.block(i))
	}
	return n
}

// Clone returns a deep copy backed by a duplicate of the store.
func (v *BitVector) Clone() (*BitVector, error) {
	store, err := v.store.Duplicate()
	v.logger.LogCloned(err)
	if err != nil {
		return nil, err
	}
	c := *v
	c.store = store
	return &c, nil
}

// Close releases the backing store if it holds resources outside the Go
// heap. The vector must not be used afterwards.
func (v *BitVector) Close() error {
	c, ok := v.store.(io.Closer)
	if !ok {
		return nil
	}
	err := c.Close()
	v.logger.LogClosed(err)
	return err
}

// String renders the bits LSB first, e.g. "0110" for bits 1 and 2 set.
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(v.bitLength)
	for pos := 0; pos < v.bitLength; pos++ {
		if v.block(pos/v.width)&blockmask.Bit(pos%v.width) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

package blockmask

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var widths = []int{8, 16, 32, 64}

func TestFull(t *testing.T) {
	assert.Equal(t, uint64(0), Full(0))
	assert.Equal(t, uint64(0xFF), Full(8))
	assert.Equal(t, uint64(0xFFFF), Full(16))
	assert.Equal(t, uint64(0xFFFFFFFF), Full(32))
	assert.Equal(t, ^uint64(0), Full(64))
	assert.Equal(t, uint64(0b11), Full(2))
}

func TestFromTo(t *testing.T) {
	assert.Equal(t, uint64(0b11110000), From(4, 8))
	assert.Equal(t, uint64(0b00011111), To(4, 8))
	assert.Equal(t, uint64(0b00010000), Between(4, 4, 8))
	assert.Equal(t, uint64(0), Between(5, 4, 8))

	for _, w := range widths {
		t.Run(fmt.Sprintf("width=%d", w), func(t *testing.T) {
			// Low end, high end and mid-block placements.
			assert.Equal(t, Full(w), From(0, w))
			assert.Equal(t, Bit(w-1), From(w-1, w))
			assert.Equal(t, Bit(0), To(0, w))
			assert.Equal(t, Full(w), To(w-1, w))

			mid := w / 2
			for b := 0; b < w; b++ {
				assert.Equal(t, b >= mid, From(mid, w)&Bit(b) != 0, "from bit %d", b)
				assert.Equal(t, b <= mid, To(mid, w)&Bit(b) != 0, "to bit %d", b)
			}

			// Masks never leak above the block width.
			for off := 0; off < w; off++ {
				assert.Zero(t, From(off, w)&^Full(w))
				assert.Zero(t, To(off, w)&^Full(w))
				assert.Equal(t, Full(w), From(off, w)|To(off, w))
				assert.Equal(t, Bit(off), From(off, w)&To(off, w))
			}
		})
	}
}

func TestTail(t *testing.T) {
	assert.Equal(t, uint64(0b11), Tail(130, 64))
	assert.Equal(t, ^uint64(0), Tail(128, 64))
	assert.Equal(t, uint64(0b1), Tail(1, 8))
	assert.Equal(t, uint64(0x7F), Tail(15, 8))
	assert.Equal(t, uint64(0xFF), Tail(16, 8))
	assert.Equal(t, uint64(0x1FFF), Tail(45, 16))
}

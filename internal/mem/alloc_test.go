package mem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	for _, size := range []int{1, 7, 8, 63, 64, 65, 130, 4096} {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf), "capacity must be clipped for size %d", size)
		assert.True(t, IsAligned(buf, CacheLine), "size %d", size)
		for _, b := range buf {
			assert.Zero(t, b)
		}
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedTo(t *testing.T) {
	for _, align := range []int{1, 2, 8, 16, 128} {
		buf := AllocAlignedTo(33, align)
		assert.Len(t, buf, 33)
		assert.True(t, IsAligned(buf, align), "align %d", align)
	}

	// Not a power of two: falls back to the cache line.
	buf := AllocAlignedTo(10, 24)
	assert.True(t, IsAligned(buf, CacheLine))
}

func BenchmarkAllocAligned(b *testing.B) {
	for _, size := range []int{64, 256, 1024, 4096} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAligned(size)
			}
		})
	}
}

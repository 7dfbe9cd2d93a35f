package mem

import (
	"unsafe"
)

// CacheLine is the default alignment used for block buffers (64 bytes).
const CacheLine = 64

// AllocAligned returns a zeroed byte slice of length size whose first byte
// sits on a CacheLine boundary. It returns nil for size <= 0.
func AllocAligned(size int) []byte {
	return AllocAlignedTo(size, CacheLine)
}

// AllocAlignedTo is like AllocAligned with an explicit alignment, which must
// be a power of two. Non power-of-two alignments fall back to CacheLine.
//
// The returned slice keeps the over-allocated backing array alive; its
// capacity is clipped to size so appends never write into the padding.
func AllocAlignedTo(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	if align <= 0 || align&(align-1) != 0 {
		align = CacheLine
	}

	buf := make([]byte, size+align)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // address arithmetic only, no conversion back
	pad := int((uintptr(align) - addr&uintptr(align-1)) & uintptr(align-1))

	return buf[pad : pad+size : pad+size]
}

// IsAligned reports whether b starts on an align boundary. Empty slices are
// considered aligned.
func IsAligned(b []byte, align int) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&b[0]))%uintptr(align) == 0 //nolint:gosec // address inspection only
}

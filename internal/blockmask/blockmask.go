package blockmask

// MaxWidth is the widest supported block (one uint64).
const MaxWidth = 64

// Full returns a mask with the low width bits set.
func Full(width int) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

// Bit returns the single-bit mask for offset.
func Bit(offset int) uint64 {
	return uint64(1) << uint(offset)
}

// From returns a mask with every bit at or above offset set, up to width.
//
//	From(4, 8) == 0b11110000
func From(offset, width int) uint64 {
	return (Full(width) << uint(offset)) & Full(width)
}

// To returns a mask with every bit at or below offset set.
//
//	To(4, 8) == 0b00011111
func To(offset, width int) uint64 {
	return Full(offset+1) & Full(width)
}

// Between returns the mask for the inclusive bit span [from, to] of one block.
// It is empty when from > to.
func Between(from, to, width int) uint64 {
	return From(from, width) & To(to, width)
}

// Tail returns the mask of valid bits in the last block of a vector holding
// bitLength bits. When bitLength is a multiple of width the whole block is valid.
func Tail(bitLength, width int) uint64 {
	if r := bitLength % width; r != 0 {
		return Full(r)
	}
	return Full(width)
}

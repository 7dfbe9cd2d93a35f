// Package blockmask derives the bit masks used to address bits inside a
// storage block of a given width.
//
// Masks are computed for 8, 16, 32 and 64 bit blocks from the width itself,
// never from a fixed machine word size. All masks are confined to the block
// width: no bit at or above width is ever set in a returned value.
//
// Bit numbering is LSB-first: bit 0 of a block is its least significant bit.
package blockmask

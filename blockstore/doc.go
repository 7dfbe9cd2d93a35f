// Package blockstore provides the storage media behind bit vectors.
//
// A Store is a fixed-length array of fixed-width unsigned blocks. It moves
// raw bits in and out by block index and knows nothing about bit lengths or
// masking; that lives in the bitvec package, which is written once against
// this interface.
//
// # Built-in Media
//
//   - Words: in-process []uint64, 64-bit blocks
//   - Buffer: raw little-endian byte buffer, 8/16/32/64-bit blocks
//   - Mapped: Buffer over an anonymous memory mapping (off-heap, must be closed)
//   - Bytes: byte string, 8-bit blocks
//
// # Custom Media
//
// Implement Store to plug in another medium:
//
//	type Store interface {
//	    BlockWidth() int
//	    BlockCount() int
//	    ReadBlock(i int) uint64
//	    WriteBlock(i int, v uint64)
//	    Duplicate() (Store, error)
//	}
//
// Media that hold resources beyond the Go heap also implement io.Closer.
package blockstore

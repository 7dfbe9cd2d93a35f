// Package mem provides aligned heap allocations for block storage.
//
// # Aligned Allocation
//
// Raw block buffers start on a cache-line boundary so that every 8, 16, 32
// or 64 bit block is naturally aligned and no block straddles two lines.
package mem

// Package mmap provides anonymous read-write memory mappings.
//
// # Overview
//
// An anonymous mapping is zero-filled memory obtained directly from the
// operating system, outside the Go heap. The raw-buffer block store uses it
// to keep large bit vectors off-heap:
//
//	m, err := mmap.Anon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes() // read-write, valid until Close
//	m.Advise(mmap.AccessRandom)
//
// # Platform Support
//
//   - Unix: mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for access hints
//   - Windows: VirtualAlloc with demand paging (Advise is a no-op)
//
// # Ownership
//
// A Mapping has a single owner. Close is idempotent; the byte slice returned
// by Bytes must not be used after Close returns.
package mmap

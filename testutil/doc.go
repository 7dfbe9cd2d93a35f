// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, reproducible RNG that generates bit positions,
// ranges and whole member lists for a given bit length.
//
//	rng := testutil.NewRNG(seed)
//	members := rng.Members(130, 0.3)   // ~30% density, ascending
//	from, to := rng.Range(130)         // from <= to
package testutil

package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/bitvec/internal/blockmask"
)

// RNG generates reproducible bit positions, ranges and blocks for tests and
// benchmarks. It is safe for concurrent use.
type RNG struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewRNG returns an RNG seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed))} //nolint:gosec // deterministic test data
}

// Block returns a random block value confined to width bits.
func (r *RNG) Block(width int) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() & blockmask.Full(width)
}

// Range returns an inclusive range [from, to] inside [0, bitLength).
// bitLength must be positive.
func (r *RNG) Range(bitLength int) (from, to int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	from = r.rand.Intn(bitLength)
	to = r.rand.Intn(bitLength)
	if from > to {
		from, to = to, from
	}
	return from, to
}

// Members returns the positions in [0, bitLength) picked independently with
// probability density, in ascending order.
func (r *RNG) Members(bitLength int, density float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, int(float64(bitLength)*density)+1)
	for pos := 0; pos < bitLength; pos++ {
		if r.rand.Float64() < density {
			out = append(out, pos)
		}
	}
	return out
}

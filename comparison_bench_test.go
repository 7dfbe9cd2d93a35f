package bitvec

import (
	"fmt"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitvec/testutil"
)

// Comparative benchmarks: BitSet vs Roaring vs bits-and-blooms
// Run with: go test -bench=Comparison -benchmem .

const benchUniverse = 100000

func benchSet(b *testing.B, members []int, opts ...Option) *BitSet {
	b.Helper()
	s, err := SetOf(benchUniverse, members, opts...)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = s.Close() })
	return s
}

// ==============================================================================
// SetRange / AddRange comparison
// ==============================================================================

func BenchmarkComparison_SetRange(b *testing.B) {
	for _, m := range []Medium{MediumWords, MediumBuffer, MediumBytes} {
		b.Run(m.String(), func(b *testing.B) {
			s := benchSet(b, nil, WithMedium(m))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = s.UnsetRange(0, 9999)
				_, _ = s.SetRange(0, 9999)
			}
		})
	}
}

func BenchmarkComparison_AddRange_Roaring(b *testing.B) {
	rb := roaring.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rb.Clear()
		rb.AddRange(0, 10000)
	}
}

func BenchmarkComparison_FlipRange_BitsAndBlooms(b *testing.B) {
	bs := bitset.New(benchUniverse)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bs.ClearAll()
		bs.FlipRange(0, 10000)
	}
}

// ==============================================================================
// AND operation comparison
// ==============================================================================

func BenchmarkComparison_Intersect(b *testing.B) {
	rng := testutil.NewRNG(1)
	am, bm := rng.Members(benchUniverse, 0.1), rng.Members(benchUniverse, 0.1)

	for _, m := range []Medium{MediumWords, MediumBuffer, MediumMapped, MediumBytes} {
		b.Run(m.String(), func(b *testing.B) {
			x := benchSet(b, am, WithMedium(m))
			y := benchSet(b, bm, WithMedium(m))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = x.InPlaceIntersect(y)
			}
		})
	}

	b.Run("roaring", func(b *testing.B) {
		x, y := toRoaring(am), toRoaring(bm)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			x.And(y)
		}
	})

	b.Run("bits-and-blooms", func(b *testing.B) {
		x, y := bitset.New(benchUniverse), bitset.New(benchUniverse)
		for _, v := range am {
			x.Set(uint(v))
		}
		for _, v := range bm {
			y.Set(uint(v))
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			x.InPlaceIntersection(y)
		}
	})
}

// ==============================================================================
// Block width comparison
// ==============================================================================

func BenchmarkComparison_UnionByWidth(b *testing.B) {
	rng := testutil.NewRNG(2)
	am, bm := rng.Members(benchUniverse, 0.5), rng.Members(benchUniverse, 0.5)

	for _, w := range []int{8, 16, 32, 64} {
		b.Run(fmt.Sprintf("width=%d", w), func(b *testing.B) {
			x := benchSet(b, am, WithMedium(MediumBuffer), WithBlockWidth(w))
			y := benchSet(b, bm, WithMedium(MediumBuffer), WithBlockWidth(w))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u, _ := x.Union(y)
				_ = u.Close()
			}
		})
	}
}

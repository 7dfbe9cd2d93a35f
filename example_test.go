package bitvec_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/bitvec"
)

// Example_bitVector demonstrates single-bit and range updates.
func Example_bitVector() {
	v, err := bitvec.New(130)
	if err != nil {
		log.Fatal(err)
	}

	changed, _ := v.Set(7)
	fmt.Println("set 7:", changed)
	changed, _ = v.Set(7)
	fmt.Println("set 7 again:", changed)

	changed, _ = v.SetRange(60, 70) // crosses the first block boundary
	fmt.Println("set 60..70:", changed, "count:", v.Count())

	_, err = v.Set(130)
	fmt.Println("out of range:", errors.Is(err, bitvec.ErrOutOfRange))
	// Output:
	// set 7: true
	// set 7 again: false
	// set 60..70: true count: 12
	// out of range: true
}

// Example_setAlgebra demonstrates pure and in-place set operations.
func Example_setAlgebra() {
	a, _ := bitvec.SetOf(16, []int{1, 2, 3})
	b, _ := bitvec.SetOf(16, []int{3, 4})

	u, _ := a.Union(b)
	fmt.Println("union:", u.Members())

	i, _ := a.Intersect(b)
	fmt.Println("intersect:", i.Members())

	same, _ := a.InPlaceSubtract(b)
	fmt.Println("a - b:", a.Members(), same == a)

	c, _ := a.Complement()
	fmt.Println("complement size:", c.Cardinality())
	// Output:
	// union: [1 2 3 4]
	// intersect: [3]
	// a - b: [1 2] true
	// complement size: 14
}

// Example_mappedMedium demonstrates an off-heap vector with 16-bit blocks.
func Example_mappedMedium() {
	v, err := bitvec.New(100, bitvec.WithMedium(bitvec.MediumMapped), bitvec.WithBlockWidth(16))
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	v.SetBlock(v.BlockCount()-1, 0xFFFF)
	last, _ := v.GetBlock(v.BlockCount() - 1)
	fmt.Printf("blocks: %d, last block: %#x\n", v.BlockCount(), last)
	// Output: blocks: 7, last block: 0xf
}

// Example_eachBlock demonstrates a visitor that stops early.
func Example_eachBlock() {
	s, _ := bitvec.SetOf(256, []int{130})

	firstNonEmpty := -1
	complete := s.EachBlock(func(block uint64, index int) bitvec.Action {
		if block != 0 {
			firstNonEmpty = index
			return bitvec.Stop
		}
		return bitvec.Continue
	})
	fmt.Println(firstNonEmpty, complete)
	// Output: 2 false
}

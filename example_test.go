package bitvec_test

import (
	"fmt"

	"github.com/hupe1980/bitvec"
)

func Example() {
	v := bitvec.New[uint64](120, false)
	v.Set(bitvec.Left, 119)
	v.Resize(150, false)

	left, _ := v.CountZero(bitvec.Left)
	right, _ := v.CountZero(bitvec.Right)
	fmt.Println(v.Len(), left, right)
	// Output: 150 119 30
}

func ExampleBitVector_At() {
	v := bitvec.New[uint32](4, false)
	v.At(1).Set(true)
	v.At(3).Set(true)
	fmt.Println(v, v.At(1).Get())
	// Output: 0101 true
}

func ExampleBitVector_CountZero_empty() {
	v := bitvec.New[uint32](0, false)
	_, ok := v.CountZero(bitvec.Right)
	fmt.Println(ok)
	// Output: false
}

func ExampleParse() {
	v, err := bitvec.Parse[uint32]("0010_1000")
	if err != nil {
		panic(err)
	}
	for pos := range v.Ones(bitvec.Right) {
		fmt.Print(pos, " ")
	}
	fmt.Println()
	// Output: 3 5
}

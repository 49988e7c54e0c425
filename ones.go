package bitvec

import (
	"iter"

	"github.com/hupe1980/bitvec/bitscan"
)

// Ones returns an iterator over the positions of set bits, counted from dir,
// in increasing order.
func (v *BitVector[W]) Ones(dir Direction) iter.Seq[int] {
	return func(yield func(int) bool) {
		width := bitscan.Width[W]()
		n := len(v.words)
		for i := 0; i < n; i++ {
			j := i
			if dir == Right {
				j = n - 1 - i
			}
			x := v.words[j]
			for x != 0 {
				k := bitscan.CountZero(dir, x)
				x = bitscan.ResetBit(dir, x, k)

				pos := j*width + k
				if dir == Right {
					// k is counted from the end of word j.
					pos = v.size - 1 - (j*width + width - 1 - k)
				}
				if !yield(pos) {
					return
				}
			}
		}
	}
}

package bitvec

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/bitvec/bitscan"
)

// Direction selects which end of the vector positions are counted from.
type Direction = bitscan.Direction

const (
	// Left counts from the first bit of the vector.
	Left = bitscan.Left
	// Right counts from the last bit of the vector.
	Right = bitscan.Right
)

// ParseDirection parses "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	d, ok := bitscan.ParseDirection(s)
	if !ok {
		return Left, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

// BitVector is a growable sequence of bits packed into words of type W.
//
// Word 0 holds the first bits of the sequence, and inside a word the first
// bit is the most-significant one. Bits of the last word beyond Len are kept
// zero.
//
// Positions passed to Test, Set, Reset, Get, Put and At must lie in
// [0, Len()); this is not checked beyond what slice indexing does.
//
// A BitVector is not safe for concurrent use.
type BitVector[W bitscan.Word] struct {
	words  []W
	size   int
	logger *Logger
}

// New creates a vector of count bits, each set to value.
// It panics if count is negative.
func New[W bitscan.Word](count int, value bool, opts ...Option) *BitVector[W] {
	if count < 0 {
		panic("bitvec: negative count")
	}
	o := applyOptions(opts)
	v := &BitVector[W]{
		words:  make([]W, wordCount[W](count)),
		size:   count,
		logger: o.logger,
	}
	if value {
		for i := range v.words {
			v.words[i] = ^W(0)
		}
		v.clearTail()
	}
	return v
}

// Len returns the number of bits in the vector.
func (v *BitVector[W]) Len() int {
	return v.size
}

// Cap returns the number of bits the allocated words can hold.
func (v *BitVector[W]) Cap() int {
	return len(v.words) * bitscan.Width[W]()
}

// Test reports whether the bit at pos is set.
func (v *BitVector[W]) Test(dir Direction, pos int) bool {
	word, bit := v.locate(dir, pos)
	return bitscan.TestBit(bitscan.Left, v.words[word], bit)
}

// Set sets the bit at pos.
func (v *BitVector[W]) Set(dir Direction, pos int) {
	word, bit := v.locate(dir, pos)
	v.words[word] = bitscan.SetBit(bitscan.Left, v.words[word], bit)
}

// Reset clears the bit at pos.
func (v *BitVector[W]) Reset(dir Direction, pos int) {
	word, bit := v.locate(dir, pos)
	v.words[word] = bitscan.ResetBit(bitscan.Left, v.words[word], bit)
}

// Get is Test(Left, pos).
func (v *BitVector[W]) Get(pos int) bool {
	return v.Test(Left, pos)
}

// Put sets the Left bit at pos to value.
func (v *BitVector[W]) Put(pos int, value bool) {
	if value {
		v.Set(Left, pos)
	} else {
		v.Reset(Left, pos)
	}
}

// Resize changes the number of bits to count. New bits are set to value;
// existing bits below min(count, Len()) keep their values.
// It panics if count is negative.
func (v *BitVector[W]) Resize(count int, value bool) {
	if count < 0 {
		panic("bitvec: negative count")
	}

	oldSize := v.size
	switch {
	case count > oldSize:
		fill := W(0)
		if value {
			fill = ^W(0)
		}
		for n := wordCount[W](count) - len(v.words); n > 0; n-- {
			v.words = append(v.words, fill)
		}
		v.fixGrowthBorder(oldSize, value)
		v.size = count
		v.clearTail()
	case count < oldSize:
		v.size = count
		v.words = v.words[:wordCount[W](count)]
		v.clearTail()
	default:
		return
	}

	if v.logger != nil {
		v.logger.LogResize(oldSize, count, len(v.words))
	}
}

// PushBack appends one bit.
func (v *BitVector[W]) PushBack(value bool) {
	v.Resize(v.size+1, value)
}

// Clear removes all bits and releases the words.
func (v *BitVector[W]) Clear() {
	oldSize := v.size
	v.words = nil
	v.size = 0

	if v.logger != nil {
		v.logger.LogClear(oldSize)
	}
}

// CountZero returns the number of zero bits preceding the first set bit,
// counted from dir. This is the dir-relative position of the first set bit.
//
// It returns false if no bit in [0, Len()) is set.
func (v *BitVector[W]) CountZero(dir Direction) (int, bool) {
	if v.size == 0 {
		return 0, false
	}
	n, ok := bitscan.CountZeroWords(dir, v.words)
	if !ok {
		return 0, false
	}
	if dir == Right {
		// Raw count starts at the end of the last word, not at the last bit.
		n -= v.Cap() - v.size
	}
	if n >= v.size {
		return 0, false
	}
	return n, true
}

// Count returns the number of set bits.
func (v *BitVector[W]) Count() int {
	n := 0
	for _, w := range v.words {
		n += bits.OnesCount64(uint64(w))
	}
	return n
}

// Words returns a copy of the backing words.
func (v *BitVector[W]) Words() []W {
	out := make([]W, len(v.words))
	copy(out, v.words)
	return out
}

// locate maps a direction-relative position to a word index and a Left bit
// index inside that word.
func (v *BitVector[W]) locate(dir Direction, pos int) (int, int) {
	if dir == Right {
		pos = v.size - 1 - pos
	}
	width := bitscan.Width[W]()
	return pos / width, pos % width
}

// fixGrowthBorder sets bits [oldSize mod W, W) of the word containing oldSize
// to value. Lower bits of that word are left untouched.
func (v *BitVector[W]) fixGrowthBorder(oldSize int, value bool) {
	width := bitscan.Width[W]()
	r := oldSize % width
	if r == 0 {
		return
	}
	border := ^W(0) >> r
	i := oldSize / width
	if value {
		v.words[i] |= border
	} else {
		v.words[i] &^= border
	}
}

// clearTail zeroes the bits of the last word beyond size.
func (v *BitVector[W]) clearTail() {
	width := bitscan.Width[W]()
	if r := v.size % width; r != 0 {
		v.words[len(v.words)-1] &^= ^W(0) >> r
	}
}

func wordCount[W bitscan.Word](count int) int {
	width := bitscan.Width[W]()
	return (count + width - 1) / width
}

package bitvec

import "github.com/hupe1980/bitvec/bitscan"

// Ref is a handle to one bit of a BitVector, addressed from the Left.
//
// A Ref is meant to be used within a single statement, e.g.
// v.At(i).Set(true). It holds no validity tracking: after Resize, PushBack or
// Clear it may address a different bit or panic.
type Ref[W bitscan.Word] struct {
	vec *BitVector[W]
	pos int
}

// At returns a handle to the Left bit at pos.
func (v *BitVector[W]) At(pos int) Ref[W] {
	return Ref[W]{vec: v, pos: pos}
}

// Get reports whether the referenced bit is set.
func (r Ref[W]) Get() bool {
	return r.vec.Test(Left, r.pos)
}

// Set assigns value to the referenced bit.
func (r Ref[W]) Set(value bool) {
	r.vec.Put(r.pos, value)
}

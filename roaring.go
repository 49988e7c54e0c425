package bitvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitvec/bitscan"
	"github.com/hupe1980/bitvec/internal/conv"
)

// ToRoaring returns a roaring bitmap holding the positions of set bits,
// counted from dir.
func (v *BitVector[W]) ToRoaring(dir Direction) (*roaring.Bitmap, error) {
	rb := roaring.New()
	for pos := range v.Ones(dir) {
		id, err := conv.IntToUint32(pos)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPositionOverflow, err)
		}
		rb.Add(id)
	}
	return rb, nil
}

// FromRoaring creates a vector of count bits with the positions held by rb,
// counted from dir, set.
func FromRoaring[W bitscan.Word](rb *roaring.Bitmap, count int, dir Direction, opts ...Option) (*BitVector[W], error) {
	v := New[W](count, false, opts...)

	it := rb.Iterator()
	for it.HasNext() {
		pos, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPositionOverflow, err)
		}
		if pos >= count {
			return nil, &PositionOutOfRangeError{Pos: pos, Size: count}
		}
		v.Set(dir, pos)
	}
	return v, nil
}

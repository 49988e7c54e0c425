package bitvec

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVector_ToRoaring(t *testing.T) {
	v := New[uint64](100, false)
	v.Set(Left, 2)
	v.Set(Left, 64)
	v.Set(Left, 99)

	rb, err := v.ToRoaring(Left)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 64, 99}, rb.ToArray())

	rb, err = v.ToRoaring(Right)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 35, 97}, rb.ToArray())
}

func TestFromRoaring(t *testing.T) {
	rb := roaring.BitmapOf(0, 31, 32, 90)

	v, err := FromRoaring[uint32](rb, 91, Left)
	require.NoError(t, err)
	assert.Equal(t, 91, v.Len())
	assert.Equal(t, 4, v.Count())
	assert.True(t, v.Test(Left, 31))
	assert.True(t, v.Test(Left, 90))

	back, err := v.ToRoaring(Left)
	require.NoError(t, err)
	assert.True(t, rb.Equals(back))

	v, err = FromRoaring[uint32](rb, 91, Right)
	require.NoError(t, err)
	assert.True(t, v.Test(Left, 90))
	assert.True(t, v.Test(Left, 0))
}

func TestFromRoaring_OutOfRange(t *testing.T) {
	_, err := FromRoaring[uint64](roaring.BitmapOf(3, 10), 10, Left)
	require.ErrorIs(t, err, ErrPositionOutOfRange)

	var oor *PositionOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 10, oor.Pos)
	assert.Equal(t, 10, oor.Size)
}

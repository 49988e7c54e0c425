package bitvec

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVector_Ones(t *testing.T) {
	v := New[uint32](70, false)
	for _, p := range []int{0, 1, 31, 32, 33, 64, 69} {
		v.Set(Left, p)
	}

	left := slices.Collect(v.Ones(Left))
	assert.Equal(t, []int{0, 1, 31, 32, 33, 64, 69}, left)

	right := slices.Collect(v.Ones(Right))
	assert.Equal(t, []int{0, 5, 36, 37, 38, 68, 69}, right)

	for _, p := range right {
		require.True(t, v.Test(Right, p))
	}
}

func TestBitVector_Ones_FirstMatchesCountZero(t *testing.T) {
	v := New[uint64](200, false)
	v.Set(Left, 77)
	v.Set(Left, 150)

	for _, dir := range []Direction{Left, Right} {
		n, ok := v.CountZero(dir)
		require.True(t, ok)
		for first := range v.Ones(dir) {
			assert.Equal(t, n, first, dir.String())
			break
		}
	}
}

func TestBitVector_Ones_Empty(t *testing.T) {
	assert.Empty(t, slices.Collect(New[uint64](0, false).Ones(Left)))
	assert.Empty(t, slices.Collect(New[uint64](65, false).Ones(Right)))
}

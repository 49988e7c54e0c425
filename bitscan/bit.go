package bitscan

// OneHot returns a word with only the bit at pos set.
// OneHot(Left, p) == OneHot(Right, Width-1-p).
func OneHot[W Word](dir Direction, pos int) W {
	if dir == Left {
		pos = Width[W]() - 1 - pos
	}
	return W(1) << pos
}

// TestBit reports whether the bit at pos is set.
func TestBit[W Word](dir Direction, x W, pos int) bool {
	return x&OneHot[W](dir, pos) != 0
}

// SetBit returns x with the bit at pos set.
func SetBit[W Word](dir Direction, x W, pos int) W {
	return x | OneHot[W](dir, pos)
}

// ResetBit returns x with the bit at pos cleared.
func ResetBit[W Word](dir Direction, x W, pos int) W {
	return x &^ OneHot[W](dir, pos)
}

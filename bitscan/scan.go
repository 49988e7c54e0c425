package bitscan

// CountZero returns the number of zero bits before the first set bit of x,
// counted from dir: leading zeros for Left, trailing zeros for Right.
//
// x must be nonzero; the result for zero is unspecified.
func CountZero[W Word](dir Direction, x W) int {
	if Width[W]() == 32 {
		if dir == Left {
			return kernelLeadingZeros32(uint32(x))
		}
		return kernelTrailingZeros32(uint32(x))
	}
	if dir == Left {
		return kernelLeadingZeros64(uint64(x))
	}
	return kernelTrailingZeros64(uint64(x))
}

// CountZeroWords returns the number of zero bits before the first set bit of
// the concatenated words, counted from dir. Word 0 holds the Left-most bits.
//
// Returns false if every word is zero (including an empty slice).
func CountZeroWords[W Word](dir Direction, words []W) (int, bool) {
	width := Width[W]()
	n := len(words)
	for i := 0; i < n; i++ {
		j := i
		if dir == Right {
			j = n - 1 - i
		}
		if x := words[j]; x != 0 {
			return i*width + CountZero(dir, x), true
		}
	}
	return 0, false
}

package bitscan

import (
	"fmt"
	"math/bits"
	"strings"
)

// Word is the storage unit for packed bits.
type Word interface {
	~uint32 | ~uint64
}

// Width returns the number of bits in W (32 or 64).
func Width[W Word]() int {
	return bits.OnesCount64(uint64(^W(0)))
}

// Direction selects which end of a bit sequence positions are counted from.
type Direction uint8

const (
	// Left counts from the most-significant (first) bit.
	Left Direction = iota
	// Right counts from the least-significant (last) bit.
	Right
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(d))
	}
}

// ParseDirection parses "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, true
	case "right", "r":
		return Right, true
	default:
		return Left, false
	}
}

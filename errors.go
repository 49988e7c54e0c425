package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBitString is returned when a bit string contains a character
	// other than '0', '1', '_' or whitespace.
	ErrInvalidBitString = errors.New("invalid bit string")

	// ErrInvalidDirection is returned when a direction name cannot be parsed.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrPositionOverflow is returned when a position does not fit a uint32
	// roaring bitmap value.
	ErrPositionOverflow = errors.New("position overflows uint32")

	// ErrPositionOutOfRange is returned when a position lies outside [0, size).
	ErrPositionOutOfRange = errors.New("position out of range")
)

// InvalidBitStringError reports the first offending character of a bit string.
//
// errors.Is(err, ErrInvalidBitString) holds for every InvalidBitStringError.
type InvalidBitStringError struct {
	Offset int
	Char   rune
}

func (e *InvalidBitStringError) Error() string {
	return fmt.Sprintf("%s: unexpected %q at offset %d", ErrInvalidBitString, e.Char, e.Offset)
}

func (e *InvalidBitStringError) Unwrap() error { return ErrInvalidBitString }

// PositionOutOfRangeError indicates a position outside of a vector's size.
//
// errors.Is(err, ErrPositionOutOfRange) holds for every PositionOutOfRangeError.
type PositionOutOfRangeError struct {
	Pos  int
	Size int
}

func (e *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrPositionOutOfRange, e.Pos, e.Size)
}

func (e *PositionOutOfRangeError) Unwrap() error { return ErrPositionOutOfRange }

package bitvec

import (
	"strings"
	"unicode"

	"github.com/hupe1980/bitvec/bitscan"
)

// String returns the bits from Left to Right as '0' and '1' characters.
func (v *BitVector[W]) String() string {
	var sb strings.Builder
	sb.Grow(v.size)
	for i := 0; i < v.size; i++ {
		if v.Test(Left, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Parse builds a vector from a string of '0' and '1' characters, the first
// character being Left position 0. Underscores and whitespace are ignored.
func Parse[W bitscan.Word](s string, opts ...Option) (*BitVector[W], error) {
	o := applyOptions(opts)

	v := New[W](0, false, opts...)
	// Building with the logger detached avoids one log line per bit.
	v.logger = nil

	for offset, c := range s {
		switch {
		case c == '0':
			v.PushBack(false)
		case c == '1':
			v.PushBack(true)
		case c == '_' || unicode.IsSpace(c):
		default:
			err := &InvalidBitStringError{Offset: offset, Char: c}
			if o.logger != nil {
				o.logger.LogParse(0, err)
			}
			return nil, err
		}
	}

	v.logger = o.logger
	if o.logger != nil {
		o.logger.LogParse(v.size, nil)
	}
	return v, nil
}

package bitvec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVector_String(t *testing.T) {
	v := New[uint32](5, false)
	v.Set(Left, 0)
	v.Set(Right, 0)
	assert.Equal(t, "10001", v.String())
	assert.Equal(t, "", New[uint64](0, true).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "0110", "0110"},
		{"separators", "1010_0000 1111\n01", "10100000111101"},
		{"long", "1" + string(bytes.Repeat([]byte("0"), 70)) + "1", "1" + string(bytes.Repeat([]byte("0"), 70)) + "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse[uint64](tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
			assert.Equal(t, len(tt.want), v.Len())
			requireTailClear(t, v)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse[uint32]("01x1")
	require.ErrorIs(t, err, ErrInvalidBitString)

	var ibe *InvalidBitStringError
	require.ErrorAs(t, err, &ibe)
	assert.Equal(t, 2, ibe.Offset)
	assert.Equal(t, 'x', ibe.Char)
}

func TestParse_RoundTrip(t *testing.T) {
	v := New[uint32](97, false)
	for p := 0; p < 97; p += 3 {
		v.Set(Left, p)
	}
	w, err := Parse[uint32](v.String())
	require.NoError(t, err)
	assert.Equal(t, v.Words(), w.Words())
	assert.Equal(t, v.Len(), w.Len())
}

func TestParse_LogsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v, err := Parse[uint64]("1011", WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, buf.String(), "parse completed")
	assert.Contains(t, buf.String(), "size=4")

	buf.Reset()
	v.PushBack(true)
	assert.Contains(t, buf.String(), "resize completed")
}

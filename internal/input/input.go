package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the compression of an input file.
type Compression uint8

const (
	// CompressionNone indicates a plain file.
	CompressionNone Compression = iota
	// CompressionZSTD indicates a zstd stream (.zst).
	CompressionZSTD
	// CompressionGzip indicates a gzip stream (.gz).
	CompressionGzip
	// CompressionLZ4 indicates an lz4 frame (.lz4).
	CompressionLZ4
)

// String returns the string representation of a Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZSTD:
		return "zstd"
	case CompressionGzip:
		return "gzip"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Detect infers the compression from the file extension.
func Detect(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".gz":
		return CompressionGzip
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Open opens path for reading, decompressing it according to its extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	rc, err := NewReader(f, Detect(path))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &readCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
}

// NewReader wraps r with a decompressor for c.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression %d", c)
	}
}

// ReadAll opens path and returns its decompressed content.
func ReadAll(path string) (string, error) {
	rc, err := Open(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

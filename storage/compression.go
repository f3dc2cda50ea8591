package storage

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how cached dumps are stored on disk.
type Compression uint8

const (
	// CompressionNone stores raw TSV, memory mapped on load.
	CompressionNone Compression = iota
	// CompressionLZ4 stores LZ4 frames (fast to decode).
	CompressionLZ4
	// CompressionZSTD stores Zstandard frames (smaller on disk).
	CompressionZSTD
)

// ParseCompression accepts "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd", "zst":
		return CompressionZSTD, nil
	}
	return 0, fmt.Errorf("storage: unknown compression %q", s)
}

func (c Compression) String() string {
	switch c {
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Compression) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText lets Compression be set from flags and environment variables.
func (c *Compression) UnmarshalText(text []byte) error {
	v, err := ParseCompression(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Compression) ext() string {
	switch c {
	case CompressionLZ4:
		return ".tsv.lz4"
	case CompressionZSTD:
		return ".tsv.zst"
	default:
		return ".tsv"
	}
}

// encoder wraps w so that written bytes land compressed.
func (c Compression) encoder(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if err := zw.Apply(lz4.CompressionLevelOption(lz4.Fast)); err != nil {
			return nil, err
		}
		return zw, nil
	case CompressionZSTD:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	default:
		return nopWriteCloser{w}, nil
	}
}

// decode reads a whole compressed cache file.
func (c Compression) decode(r io.Reader) ([]byte, error) {
	switch c {
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(r))
	case CompressionZSTD:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	default:
		return io.ReadAll(r)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

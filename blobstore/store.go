package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidRange is returned when a range read starts outside the blob.
var ErrInvalidRange = errors.New("blobstore: invalid range")

// BlobStore is an abstraction for fetching the compressed dataset dumps.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
	// ReadRange returns a reader for n bytes starting at off.
	// Reads past the end are truncated to the blob size.
	ReadRange(ctx context.Context, off, n int64) (io.ReadCloser, error)
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// ReadAll streams the whole blob into w.
func ReadAll(ctx context.Context, b Blob, w io.Writer) (int64, error) {
	if b.Size() == 0 {
		return 0, nil
	}
	rc, err := b.ReadRange(ctx, 0, b.Size())
	if err != nil {
		return 0, err
	}
	defer func() { _ = rc.Close() }()
	return io.Copy(w, rc)
}

// Span clamps a range request to a blob of the given size and returns the
// inclusive end offset used by HTTP-style Range headers.
func Span(size, off, n int64) (int64, error) {
	if off < 0 || n <= 0 || off >= size {
		return 0, fmt.Errorf("%w: offset %d length %d size %d", ErrInvalidRange, off, n, size)
	}
	end := off + n - 1
	if end >= size {
		end = size - 1
	}
	return end, nil
}

package blobstore

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	src := []byte("hello world")
	store.Put("greeting", src)
	src[0] = 'j'

	blob, err := store.Open(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, int64(11), blob.Size())

	t.Run("Range", func(t *testing.T) {
		rc, err := blob.ReadRange(ctx, 6, 100)
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "world", string(got))
	})

	t.Run("ReadAll", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := ReadAll(ctx, blob, &buf)
		require.NoError(t, err)
		assert.Equal(t, int64(11), n)
		assert.Equal(t, "hello world", buf.String())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := blob.ReadRange(ctx, 11, 1)
		assert.ErrorIs(t, err, ErrInvalidRange)
		_, err = blob.ReadRange(ctx, -1, 1)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	store.Delete("greeting")
	_, err = store.Open(ctx, "greeting")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Canceled(t *testing.T) {
	store := NewMemoryStore()
	store.Put("x", []byte("x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Open(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSpan(t *testing.T) {
	end, err := Span(10, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(9), end)

	end, err = Span(10, 4, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(9), end)

	_, err = Span(10, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

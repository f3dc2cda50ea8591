package resource

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitedReader(t *testing.T) {
	c := NewController(Config{DownloadBytesPerSec: 1 << 20})
	require.Equal(t, 1<<20, c.IOBurst())

	src := strings.Repeat("x", 3<<20)
	r := NewRateLimitedReader(context.Background(), strings.NewReader(src), c)

	// Reads larger than the burst are shortened instead of failing.
	buf := make([]byte, 2<<20)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.LessOrEqual(t, n, 1<<20)
}

func TestRateLimitedReader_Canceled(t *testing.T) {
	c := NewController(Config{DownloadBytesPerSec: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRateLimitedReader(ctx, strings.NewReader("abc"), c)
	_, err := r.Read(make([]byte, 1))
	assert.Error(t, err)
}

func TestCountingReader(t *testing.T) {
	var reported []int64
	cr := NewCountingReader(strings.NewReader("hello world"), func(total int64) {
		reported = append(reported, total)
	})

	data, err := io.ReadAll(io.LimitReader(cr, 5))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	rest, err := io.ReadAll(cr)
	require.NoError(t, err)
	assert.Equal(t, " world", string(rest))

	assert.Equal(t, int64(11), cr.Count())
	require.NotEmpty(t, reported)
	assert.Equal(t, int64(11), reported[len(reported)-1])
}

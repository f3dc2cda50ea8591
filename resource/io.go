package resource

import (
	"context"
	"io"
	"sync/atomic"
)

// RateLimitedReader throttles reads through a Controller's bandwidth limit.
type RateLimitedReader struct {
	ctx context.Context
	r   io.Reader
	rc  *Controller
}

// NewRateLimitedReader wraps r. A nil Controller disables throttling.
func NewRateLimitedReader(ctx context.Context, r io.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{ctx: ctx, r: r, rc: rc}
}

func (r *RateLimitedReader) Read(p []byte) (int, error) {
	// A single wait cannot exceed the limiter's burst.
	if burst := r.rc.IOBurst(); burst > 0 && len(p) > burst {
		p = p[:burst]
	}

	if err := r.rc.AcquireIO(r.ctx, len(p)); err != nil {
		return 0, err
	}

	return r.r.Read(p)
}

// CountingReader counts the bytes read through it and reports progress.
type CountingReader struct {
	r        io.Reader
	n        atomic.Int64
	progress func(total int64)
}

// NewCountingReader wraps r. progress, if non-nil, is called after every
// read with the running total.
func NewCountingReader(r io.Reader, progress func(total int64)) *CountingReader {
	return &CountingReader{r: r, progress: progress}
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		total := c.n.Add(int64(n))
		if c.progress != nil {
			c.progress(total)
		}
	}

	return n, err
}

// Count returns the bytes read so far.
func (c *CountingReader) Count() int64 { return c.n.Load() }

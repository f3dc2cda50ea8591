package tvrank

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tvrank/internal/catalog"
	"github.com/hupe1980/tvrank/internal/ratings"
)

// lineCursor hands out batches of lines from one shared buffer. Claiming is
// the only mutual exclusion during loading; decoding happens outside the lock.
type lineCursor struct {
	mu   sync.Mutex
	rest []byte
	next int // 0-based index of the first unclaimed line
}

// newLineCursor positions a cursor after the header line.
func newLineCursor(buf []byte) *lineCursor {
	c := &lineCursor{rest: buf}
	c.claim(1, nil)

	return c
}

// claim appends up to n lines to dst and returns the index of the first one.
// An empty result means the buffer is exhausted.
func (c *lineCursor) claim(n int, dst [][]byte) (int, [][]byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	first := c.next
	for ; n > 0 && len(c.rest) > 0; n-- {
		line := c.rest
		if i := bytes.IndexByte(c.rest, '\n'); i >= 0 {
			line, c.rest = c.rest[:i], c.rest[i+1:]
		} else {
			c.rest = nil
		}

		dst = append(dst, line)
		c.next++
	}

	return first, dst
}

// buildShards fills o.workers private catalogs from the title dump and the
// ratings table from the ratings dump, all concurrently. The first failure
// cancels the remaining workers and is returned.
func buildShards(ctx context.Context, titles, ratingsBuf []byte, o options) ([]*catalog.Catalog, *ratings.Table, error) {
	g, ctx := errgroup.WithContext(ctx)

	cursor := newLineCursor(titles)
	shards := make([]*catalog.Catalog, o.workers)

	for i := range shards {
		g.Go(func() error {
			start := time.Now()
			shard := catalog.New()
			batch := make([][]byte, 0, min(o.batchSize, 1<<16))

			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				var first int
				first, batch = cursor.claim(o.batchSize, batch[:0])
				if len(batch) == 0 {
					break
				}

				for j, line := range batch {
					if len(line) == 0 {
						continue
					}

					if err := shard.Insert(line); err != nil {
						return &LoadError{Shard: i, Line: first + j + 1, Err: err}
					}
				}
			}

			shards[i] = shard
			o.logger.WithShard(i).LogShardLoaded(ctx, shard.NumMovies(), shard.NumSeries(), time.Since(start))

			return nil
		})
	}

	var table *ratings.Table
	g.Go(func() error {
		t, err := ratings.Load(ctx, ratingsBuf)
		if err != nil {
			var le *ratings.LineError
			if errors.As(err, &le) {
				return &LoadError{Shard: -1, Line: le.Line, Err: le.Err}
			}

			return &LoadError{Shard: -1, Err: err}
		}

		table = t

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return shards, table, nil
}

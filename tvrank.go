package tvrank

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hupe1980/tvrank/imdb"
	"github.com/hupe1980/tvrank/internal/catalog"
	"github.com/hupe1980/tvrank/internal/pool"
	"github.com/hupe1980/tvrank/internal/ratings"
	"github.com/hupe1980/tvrank/storage"
)

// Service is the loaded, immutable title index.
//
// All query methods are safe for concurrent use.
type Service struct {
	shards  []*catalog.Catalog
	ratings *ratings.Table
	pool    *pool.Pool
	logger  *Logger
	metrics MetricsCollector
	closed  atomic.Bool
}

// New builds a Service from the decompressed title and ratings dumps. Both
// buffers must contain their header line. Decoded titles own their text, so
// the buffers may be released once New returns.
func New(ctx context.Context, titles, ratingsBuf []byte, optFns ...Option) (*Service, error) {
	start := time.Now()

	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "loading imdb dumps",
		"workers", o.workers,
		"batch_size", o.batchSize,
		"titles_bytes", len(titles),
		"ratings_bytes", len(ratingsBuf),
	)

	shards, table, err := buildShards(ctx, titles, ratingsBuf, o)
	if err != nil {
		o.metricsCollector.RecordLoad(0, time.Since(start), err)
		o.logger.LogLoad(ctx, Stats{}, time.Since(start), err)
		return nil, err
	}

	s := &Service{
		shards:  shards,
		ratings: table,
		pool:    pool.New(o.poolSize),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}

	stats := s.Stats()
	o.metricsCollector.RecordLoad(stats.Movies+stats.Series, time.Since(start), nil)
	o.logger.LogLoad(ctx, stats, time.Since(start), nil)

	return s, nil
}

// Open builds a Service from the buffers held by st. st may be closed once Open returns.
func Open(ctx context.Context, st *storage.Storage, optFns ...Option) (*Service, error) {
	return New(ctx, st.Titles(), st.Ratings(), optFns...)
}

// Rating returns the rating of the title with the given identifier.
func (s *Service) Rating(id imdb.TitleID) (imdb.Rating, bool) {
	return s.ratings.Get(id)
}

// ShardStats counts the titles of one shard.
type ShardStats struct {
	Movies int
	Series int
}

// Stats summarizes the loaded index.
type Stats struct {
	Shards  []ShardStats
	Movies  int
	Series  int
	Ratings int
}

// Stats returns per-shard and total title counts.
func (s *Service) Stats() Stats {
	st := Stats{
		Shards:  make([]ShardStats, len(s.shards)),
		Ratings: s.ratings.Len(),
	}

	for i, sh := range s.shards {
		st.Shards[i] = ShardStats{Movies: sh.NumMovies(), Series: sh.NumSeries()}
		st.Movies += sh.NumMovies()
		st.Series += sh.NumSeries()
	}

	return st
}

// NumShards returns the number of shards the index was built with.
func (s *Service) NumShards() int { return len(s.shards) }

// Close stops the query goroutines. It is idempotent; queries after Close
// fail with ErrClosed.
func (s *Service) Close() error {
	if s == nil || !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.pool.Close()

	return nil
}

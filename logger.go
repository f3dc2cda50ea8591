package tvrank

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/tvrank/imdb"
)

// Logger wraps slog.Logger with tvrank-specific helpers so that every
// component logs the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithShard adds a shard field to the logger.
func (l *Logger) WithShard(shard int) *Logger {
	return &Logger{
		Logger: l.Logger.With("shard", shard),
	}
}

// LogShardLoaded logs the outcome of one load worker.
func (l *Logger) LogShardLoaded(ctx context.Context, movies, series int, duration time.Duration) {
	l.DebugContext(ctx, "shard loaded",
		"movies", movies,
		"series", series,
		"duration", duration,
	)
}

// LogLoad logs the outcome of building a Service.
func (l *Logger) LogLoad(ctx context.Context, stats Stats, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"duration", duration,
			"error", err,
		)
		return
	}

	l.InfoContext(ctx, "load completed",
		"shards", len(stats.Shards),
		"movies", stats.Movies,
		"series", stats.Series,
		"ratings", stats.Ratings,
		"duration", duration,
	)
}

// LogQuery logs one query fanned out over all shards.
func (l *Logger) LogQuery(ctx context.Context, kind string, cl imdb.Classification, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"kind", kind,
			"classification", cl.String(),
			"error", err,
		)
		return
	}

	l.DebugContext(ctx, "query completed",
		"kind", kind,
		"classification", cl.String(),
		"results", results,
	)
}

package tvrank

import (
	"log/slog"
	"runtime"
)

// DefaultBatchSize is the number of dump lines a load worker claims at once.
const DefaultBatchSize = 200_000

type options struct {
	workers          int
	batchSize        int
	poolSize         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Service construction.
type Option func(*options)

// DefaultWorkers returns half the available parallelism, at least 1.
func DefaultWorkers() int {
	return max(1, runtime.GOMAXPROCS(0)/2)
}

// WithWorkers sets the number of load workers, which is also the number of
// shards. n must be at least 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBatchSize sets how many lines a worker claims from the shared cursor
// per critical section.
func WithBatchSize(n int) Option {
	return func(o *options) {
		o.batchSize = n
	}
}

// WithPoolSize sets the number of goroutines serving query fan-out.
// Zero or less means one per shard.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &tvrank.BasicMetricsCollector{}
//	svc, _ := tvrank.New(ctx, titles, ratings, tvrank.WithMetricsCollector(metrics))
//	// ... query svc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Avg latency: %dns\n", stats.QueryCount, stats.QueryAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		workers:          DefaultWorkers(),
		batchSize:        DefaultBatchSize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.workers < 1 {
		return o, ErrInvalidWorkers
	}
	if o.batchSize < 1 {
		return o, ErrInvalidBatchSize
	}
	if o.poolSize <= 0 {
		o.poolSize = o.workers
	}

	return o, nil
}

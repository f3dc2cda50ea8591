package tvrank

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkers is returned when fewer than one load worker is configured.
	ErrInvalidWorkers = errors.New("number of workers must be at least 1")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrInvalidClassification is returned for queries that are neither for movies nor series.
	ErrInvalidClassification = errors.New("query classification must be movies or series")

	// ErrClosed is returned by queries on a closed Service.
	ErrClosed = errors.New("service is closed")
)

// LoadError reports the dump line that made loading fail.
//
// The original underlying error can be accessed via errors.Unwrap.
type LoadError struct {
	// Shard is the worker that decoded the line, or -1 for the ratings dump.
	Shard int
	// Line is the 1-based line number in the dump, header included.
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Shard < 0 {
		if e.Line > 0 {
			return fmt.Sprintf("load ratings: line %d: %v", e.Line, e.Err)
		}

		return fmt.Sprintf("load ratings: %v", e.Err)
	}

	return fmt.Sprintf("load titles: shard %d: line %d: %v", e.Shard, e.Line, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

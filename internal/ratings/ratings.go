// Package ratings holds the identifier to rating table built from title.ratings.tsv.
package ratings

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hupe1980/tvrank/imdb"
)

// Table maps title identifiers to ratings. It is built by one goroutine and
// read-only afterwards.
type Table struct {
	m map[imdb.TitleID]imdb.Rating
}

// New returns an empty table.
func New() *Table {
	return &Table{m: make(map[imdb.TitleID]imdb.Rating)}
}

// LineError reports the dump line a rating failed to decode on.
type LineError struct {
	// Line is 1-based, header included.
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("ratings line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// checkEvery is how many lines Load decodes between context checks.
const checkEvery = 1 << 16

// Load builds a table from a whole dump. The header line and empty lines are skipped.
func Load(ctx context.Context, buf []byte) (*Table, error) {
	// Roughly 20 bytes per line in the published dump.
	t := &Table{m: make(map[imdb.TitleID]imdb.Rating, len(buf)/20)}

	lineNo := 0
	for len(buf) > 0 {
		line := buf
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			line, buf = buf[:i], buf[i+1:]
		} else {
			buf = nil
		}

		lineNo++
		if lineNo%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if lineNo == 1 || len(line) == 0 {
			continue
		}

		if err := t.Insert(line); err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
	}

	return t, nil
}

// Insert decodes one rating line. A repeated identifier is an error matching
// imdb.ErrDuplicateIdentifier.
func (t *Table) Insert(line []byte) error {
	id, r, err := imdb.ParseRating(line)
	if err != nil {
		return err
	}

	if _, dup := t.m[id]; dup {
		return &imdb.DuplicateIDError{ID: id}
	}
	t.m[id] = r

	return nil
}

// Get returns the rating for id.
func (t *Table) Get(id imdb.TitleID) (imdb.Rating, bool) {
	r, ok := t.m[id]
	return r, ok
}

// Len returns the number of rated titles.
func (t *Table) Len() int { return len(t.m) }

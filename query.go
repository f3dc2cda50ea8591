package tvrank

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/tvrank/imdb"
	"github.com/hupe1980/tvrank/internal/catalog"
	"github.com/hupe1980/tvrank/internal/pool"
	"github.com/hupe1980/tvrank/keywords"
)

// Result is one matching title with its rating, if it has one.
type Result struct {
	Title  *imdb.Title
	Rating *imdb.Rating
}

// ByTitle returns the titles registered under name. The name is lowercased
// before lookup. If year is non-nil only titles starting that year match.
func (s *Service) ByTitle(ctx context.Context, cl imdb.Classification, name string, year *uint16) ([]Result, error) {
	name = catalog.NormalizeName(name)

	if year != nil {
		y := *year
		return s.fanOut(ctx, "title", cl, func(c *catalog.Catalog) []*imdb.Title {
			return c.ByNameYear(cl, name, y)
		})
	}

	return s.fanOut(ctx, "title", cl, func(c *catalog.Catalog) []*imdb.Title {
		return c.ByName(cl, name)
	})
}

// ByKeywords returns the titles with a name containing every keyword.
func (s *Service) ByKeywords(ctx context.Context, cl imdb.Classification, ks keywords.KeywordSet) ([]Result, error) {
	if ks.Len() == 0 {
		return nil, keywords.ErrEmptyOrTooShort
	}

	return s.fanOut(ctx, "keywords", cl, func(c *catalog.Catalog) []*imdb.Title {
		return slices.Collect(c.ByKeywords(cl, ks))
	})
}

// ByTitleID returns the title with the given identifier. At most one result
// is expected; more are only possible if the dump repeats an identifier
// across shards.
func (s *Service) ByTitleID(ctx context.Context, cl imdb.Classification, id imdb.TitleID) ([]Result, error) {
	return s.fanOut(ctx, "id", cl, func(c *catalog.Catalog) []*imdb.Title {
		if t, ok := c.ByID(cl, id); ok {
			return []*imdb.Title{t}
		}
		return nil
	})
}

// ByGenres returns the titles tagged with every genre in gs.
func (s *Service) ByGenres(ctx context.Context, cl imdb.Classification, gs imdb.Genres) ([]Result, error) {
	return s.fanOut(ctx, "genres", cl, func(c *catalog.Catalog) []*imdb.Title {
		return slices.Collect(c.ByGenres(cl, gs))
	})
}

// fanOut runs lookup on every shard through the pool and concatenates the
// partial results in shard order.
func (s *Service) fanOut(ctx context.Context, kind string, cl imdb.Classification, lookup func(*catalog.Catalog) []*imdb.Title) ([]Result, error) {
	start := time.Now()

	results, err := s.collect(ctx, cl, lookup)

	s.metrics.RecordQuery(kind, len(results), time.Since(start), err)
	s.logger.LogQuery(ctx, kind, cl, len(results), err)

	return results, err
}

func (s *Service) collect(ctx context.Context, cl imdb.Classification, lookup func(*catalog.Catalog) []*imdb.Title) ([]Result, error) {
	if cl != imdb.Movies && cl != imdb.Series {
		return nil, fmt.Errorf("%w: %s", ErrInvalidClassification, cl)
	}

	if s.closed.Load() {
		return nil, ErrClosed
	}

	parts, err := pool.Map(ctx, s.pool, len(s.shards), func(i int) []*imdb.Title {
		return lookup(s.shards[i])
	})
	if err != nil {
		if errors.Is(err, pool.ErrClosed) {
			return nil, ErrClosed
		}
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}

	results := make([]Result, 0, n)
	for _, p := range parts {
		for _, t := range p {
			results = append(results, s.withRating(t))
		}
	}

	return results, nil
}

func (s *Service) withRating(t *imdb.Title) Result {
	r := Result{Title: t}
	if rating, ok := s.ratings.Get(t.ID); ok {
		r.Rating = &rating
	}

	return r
}

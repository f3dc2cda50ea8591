package catalog

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/tvrank/imdb"
	"github.com/hupe1980/tvrank/internal/arena"
)

// yearKey is a start year, or noYear for titles without one.
type yearKey uint32

const noYear yearKey = math.MaxUint32

func keyOf(year *uint16) yearKey {
	if year == nil {
		return noYear
	}

	return yearKey(*year)
}

type byYear map[yearKey][]arena.Cookie

// partition holds the titles of one classification.
type partition struct {
	titles *arena.Arena[imdb.Title]
	byName map[string]byYear
	byID   map[imdb.TitleID]arena.Cookie
	genres map[imdb.Genre]*roaring.Bitmap
}

func newPartition() *partition {
	return &partition{
		titles: arena.New[imdb.Title](),
		byName: make(map[string]byYear),
		byID:   make(map[imdb.TitleID]arena.Cookie),
		genres: make(map[imdb.Genre]*roaring.Bitmap),
	}
}

// index registers an already pushed title under its identifier, names and genres.
func (p *partition) index(t *imdb.Title, c arena.Cookie) {
	p.byID[t.ID] = c

	year := keyOf(t.StartYear)
	p.register(NormalizeName(t.PrimaryTitle), year, c)
	if t.OriginalTitle != t.PrimaryTitle {
		p.register(NormalizeName(t.OriginalTitle), year, c)
	}

	for _, g := range t.Genres.Slice() {
		bm, ok := p.genres[g]
		if !ok {
			bm = roaring.New()
			p.genres[g] = bm
		}
		bm.Add(uint32(c))
	}
}

func (p *partition) register(name string, year yearKey, c arena.Cookie) {
	years, ok := p.byName[name]
	if !ok {
		years = make(byYear, 1)
		p.byName[name] = years
	}

	// A lowercased original name can collide with the primary one.
	cookies := years[year]
	if n := len(cookies); n > 0 && cookies[n-1] == c {
		return
	}
	years[year] = append(cookies, c)
}

func (p *partition) resolve(cookies []arena.Cookie) []*imdb.Title {
	if len(cookies) == 0 {
		return nil
	}

	out := make([]*imdb.Title, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, p.titles.MustGet(c))
	}

	return out
}

// yieldBitmap yields titles in cookie order, i.e. insertion order.
func (p *partition) yieldBitmap(bm *roaring.Bitmap, yield func(*imdb.Title) bool) {
	it := bm.Iterator()
	for it.HasNext() {
		if !yield(p.titles.MustGet(arena.Cookie(it.Next()))) {
			return
		}
	}
}

// Catalog is one shard of the title index.
type Catalog struct {
	movies *partition
	series *partition
}

// New returns an empty shard.
func New() *Catalog {
	return &Catalog{
		movies: newPartition(),
		series: newPartition(),
	}
}

func (c *Catalog) partition(cl imdb.Classification) *partition {
	switch cl {
	case imdb.Movies:
		return c.movies
	case imdb.Series:
		return c.series
	default:
		return nil
	}
}

// Insert decodes one title line and indexes it.
//
// Titles that are neither movies nor series are skipped without error. A
// duplicate identifier yields an error matching imdb.ErrDuplicateIdentifier;
// the shard must then be discarded.
func (c *Catalog) Insert(line []byte) error {
	t, err := imdb.ParseTitle(line)
	if err != nil {
		return err
	}

	return c.Add(t)
}

// Add indexes an already decoded title.
func (c *Catalog) Add(t imdb.Title) error {
	p := c.partition(t.Classification())
	if p == nil {
		return nil
	}

	ck := p.titles.Push(t)

	// Identifiers are unique across both classifications of a shard.
	_, inMovies := c.movies.byID[t.ID]
	_, inSeries := c.series.byID[t.ID]
	if inMovies || inSeries {
		return fmt.Errorf("insert: %w", &imdb.DuplicateIDError{ID: t.ID})
	}

	p.index(p.titles.MustGet(ck), ck)

	return nil
}

// ByNameYear returns the titles registered under the lowercased name and start year.
func (c *Catalog) ByNameYear(cl imdb.Classification, name string, year uint16) []*imdb.Title {
	p := c.partition(cl)
	if p == nil {
		return nil
	}

	return p.resolve(p.byName[name][yearKey(year)])
}

// ByName returns the titles registered under the lowercased name across all
// years, including titles without a start year, in insertion order.
func (c *Catalog) ByName(cl imdb.Classification, name string) []*imdb.Title {
	p := c.partition(cl)
	if p == nil {
		return nil
	}

	years := p.byName[name]
	if len(years) == 0 {
		return nil
	}

	var cookies []arena.Cookie
	for _, cs := range years {
		cookies = append(cookies, cs...)
	}
	slices.Sort(cookies)

	return p.resolve(cookies)
}

// ByID returns the title with the given identifier.
func (c *Catalog) ByID(cl imdb.Classification, id imdb.TitleID) (*imdb.Title, bool) {
	p := c.partition(cl)
	if p == nil {
		return nil, false
	}

	ck, ok := p.byID[id]
	if !ok {
		return nil, false
	}

	return p.titles.Get(ck)
}

// Matcher decides whether a registered name is a keyword hit.
type Matcher interface {
	Matches(name string) bool
}

// ByKeywords yields every title registered under a name accepted by m.
//
// Names are filtered eagerly when the sequence is first ranged over; titles
// are yielded once each, in insertion order, even when both their primary and
// original names match.
func (c *Catalog) ByKeywords(cl imdb.Classification, m Matcher) iter.Seq[*imdb.Title] {
	return func(yield func(*imdb.Title) bool) {
		p := c.partition(cl)
		if p == nil {
			return
		}

		hits := roaring.New()
		for name, years := range p.byName {
			if !m.Matches(name) {
				continue
			}

			for _, cs := range years {
				for _, ck := range cs {
					hits.Add(uint32(ck))
				}
			}
		}

		p.yieldBitmap(hits, yield)
	}
}

// ByGenres yields the titles tagged with every genre in gs, in insertion
// order. An empty set yields nothing.
func (c *Catalog) ByGenres(cl imdb.Classification, gs imdb.Genres) iter.Seq[*imdb.Title] {
	return func(yield func(*imdb.Title) bool) {
		p := c.partition(cl)
		if p == nil || gs.IsEmpty() {
			return
		}

		var acc *roaring.Bitmap
		for _, g := range gs.Slice() {
			bm, ok := p.genres[g]
			if !ok {
				return
			}

			if acc == nil {
				acc = bm.Clone()
			} else {
				acc.And(bm)
			}
		}

		p.yieldBitmap(acc, yield)
	}
}

// NumMovies returns the number of movies in the shard.
func (c *Catalog) NumMovies() int { return c.movies.titles.Len() }

// NumSeries returns the number of series in the shard.
func (c *Catalog) NumSeries() int { return c.series.titles.Len() }

// NumNames returns the number of distinct registered names for cl.
func (c *Catalog) NumNames(cl imdb.Classification) int {
	if p := c.partition(cl); p != nil {
		return len(p.byName)
	}

	return 0
}

// NormalizeName lowercases ASCII letters, the form every name is indexed under.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, name)
}

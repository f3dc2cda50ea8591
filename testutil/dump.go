package testutil

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	// TitlesHeader is the first line of title.basics.tsv.
	TitlesHeader = "tconst\ttitleType\tprimaryTitle\toriginalTitle\tisAdult\tstartYear\tendYear\truntimeMinutes\tgenres"
	// RatingsHeader is the first line of title.ratings.tsv.
	RatingsHeader = "tconst\taverageRating\tnumVotes"
)

// Row describes one title.basics.tsv line. Zero numeric fields render as \N.
type Row struct {
	ID       uint64
	Type     string
	Primary  string
	Original string
	Adult    bool
	Year     int
	EndYear  int
	Runtime  int
	Genres   []string
}

// Line renders the row as a dump line without trailing newline.
func (r Row) Line() string {
	original := r.Original
	if original == "" {
		original = r.Primary
	}

	adult := "0"
	if r.Adult {
		adult = "1"
	}

	genres := `\N`
	if len(r.Genres) > 0 {
		genres = strings.Join(r.Genres, ",")
	}

	return strings.Join([]string{
		fmt.Sprintf("tt%07d", r.ID),
		r.Type,
		r.Primary,
		original,
		adult,
		optional(r.Year),
		optional(r.EndYear),
		optional(r.Runtime),
		genres,
	}, "\t")
}

func optional(v int) string {
	if v == 0 {
		return `\N`
	}
	return fmt.Sprint(v)
}

// Dump accumulates a title dump and a ratings dump, headers included.
type Dump struct {
	titles  bytes.Buffer
	ratings bytes.Buffer
	rows    []Row
}

// NewDump returns a dump holding only the two header lines.
func NewDump() *Dump {
	d := &Dump{}
	d.titles.WriteString(TitlesHeader + "\n")
	d.ratings.WriteString(RatingsHeader + "\n")
	return d
}

// Title appends a title row.
func (d *Dump) Title(r Row) *Dump {
	d.titles.WriteString(r.Line())
	d.titles.WriteByte('\n')
	d.rows = append(d.rows, r)
	return d
}

// RawTitle appends an arbitrary line to the title dump.
func (d *Dump) RawTitle(line string) *Dump {
	d.titles.WriteString(line)
	d.titles.WriteByte('\n')
	return d
}

// Rating appends a rating row; score is in tenths.
func (d *Dump) Rating(id uint64, score uint8, votes uint64) *Dump {
	fmt.Fprintf(&d.ratings, "tt%07d\t%d.%d\t%d\n", id, score/10, score%10, votes)
	return d
}

// Titles returns the title dump bytes.
func (d *Dump) Titles() []byte { return d.titles.Bytes() }

// Ratings returns the ratings dump bytes.
func (d *Dump) Ratings() []byte { return d.ratings.Bytes() }

// Rows returns the rows added through Title.
func (d *Dump) Rows() []Row { return d.rows }

var (
	words = []string{
		"the", "matrix", "dark", "night", "return", "king", "star", "wars", "love",
		"house", "river", "city", "ghost", "empire", "last", "summer", "blue", "red",
		"amélie", "crónica", "über", "garden", "storm", "silent", "hill", "road",
	}
	movieTypes  = []string{"movie", "tvMovie", "short", "video", "tvSpecial"}
	seriesTypes = []string{"tvSeries", "tvMiniSeries"}
	otherTypes  = []string{"tvEpisode", "videoGame", "tvPilot"}
	genreTags   = []string{"Action", "Comedy", "Drama", "Sci-Fi", "Horror", "Documentary", "Film-Noir", "Reality-TV"}
)

// RandomRow returns a row with identifier id and random content.
func RandomRow(rng *RNG, id uint64) Row {
	var typ string
	switch n := rng.Intn(10); {
	case n < 6:
		typ = Pick(rng, movieTypes)
	case n < 9:
		typ = Pick(rng, seriesTypes)
	default:
		typ = Pick(rng, otherTypes)
	}

	primary := rng.Phrase(words, rng.Between(1, 3))
	if c := primary[0]; 'a' <= c && c <= 'z' {
		primary = string(c-'a'+'A') + primary[1:]
	}

	r := Row{ID: id, Type: typ, Primary: primary}
	if rng.Bool(0.2) {
		r.Original = rng.Phrase(words, 2)
	}
	if rng.Bool(0.9) {
		r.Year = rng.Between(1900, 2025)
	}
	if rng.Bool(0.7) {
		r.Runtime = rng.Between(1, 240)
	}
	for i := rng.Intn(3); i > 0; i-- {
		r.Genres = append(r.Genres, Pick(rng, genreTags))
	}

	return r
}

// RandomDump returns a dump of n titles with identifiers 1..n, roughly two
// thirds of which are rated.
func RandomDump(rng *RNG, n int) *Dump {
	d := NewDump()
	for id := uint64(1); id <= uint64(n); id++ {
		d.Title(RandomRow(rng, id))
		if rng.Bool(0.66) {
			d.Rating(id, uint8(rng.Intn(101)), uint64(rng.Intn(1_000_000)))
		}
	}
	return d
}

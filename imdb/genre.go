package imdb

import (
	"bytes"
	"math/bits"
	"strings"
)

// Genre is one IMDb genre tag.
type Genre uint8

const (
	Action Genre = iota
	Adult
	Adventure
	Animation
	Biography
	Comedy
	Crime
	Documentary
	Drama
	Experimental
	Family
	Fantasy
	FilmNoir
	GameShow
	History
	Horror
	Music
	Musical
	Mystery
	News
	RealityTV
	Romance
	SciFi
	Short
	Sport
	TalkShow
	Thriller
	War
	Western

	numGenres
)

var genreNames = [numGenres]string{
	"Action", "Adult", "Adventure", "Animation", "Biography", "Comedy", "Crime",
	"Documentary", "Drama", "Experimental", "Family", "Fantasy", "Film-Noir",
	"Game-Show", "History", "Horror", "Music", "Musical", "Mystery", "News",
	"Reality-TV", "Romance", "Sci-Fi", "Short", "Sport", "Talk-Show",
	"Thriller", "War", "Western",
}

// ParseGenre decodes a single genre tag. Matching is exact, as in the dumps.
func ParseGenre(b []byte) (Genre, error) {
	for g := Genre(0); g < numGenres; g++ {
		if string(b) == genreNames[g] {
			return g, nil
		}
	}

	return 0, fieldError(ErrInvalidGenre, b)
}

func (g Genre) String() string {
	if g >= numGenres {
		return "Unknown"
	}

	return genreNames[g]
}

// AllGenres returns every known genre in enumeration order.
func AllGenres() []Genre {
	out := make([]Genre, numGenres)
	for i := range out {
		out[i] = Genre(i)
	}

	return out
}

// Genres is a set of genres stored as a bit mask.
type Genres uint32

// NewGenres builds a set from the given genres; duplicates collapse.
func NewGenres(gs ...Genre) Genres {
	var s Genres
	for _, g := range gs {
		s = s.Add(g)
	}

	return s
}

// ParseGenres decodes a comma separated genre list. The sentinel \N yields the empty set.
func ParseGenres(b []byte) (Genres, error) {
	var s Genres
	if bytes.Equal(b, notAvailable) {
		return s, nil
	}

	for _, tag := range bytes.Split(b, []byte{comma}) {
		g, err := ParseGenre(tag)
		if err != nil {
			return 0, err
		}

		s = s.Add(g)
	}

	return s, nil
}

// Add returns the set with g included.
func (s Genres) Add(g Genre) Genres { return s | 1<<g }

// Has reports whether g is in the set.
func (s Genres) Has(g Genre) bool { return s&(1<<g) != 0 }

// Union returns the genres present in either set.
func (s Genres) Union(o Genres) Genres { return s | o }

// Contains reports whether every genre of o is also in s.
func (s Genres) Contains(o Genres) bool { return s&o == o }

// Len returns the number of genres in the set.
func (s Genres) Len() int { return bits.OnesCount32(uint32(s)) }

// IsEmpty reports whether the set has no genres.
func (s Genres) IsEmpty() bool { return s == 0 }

// Slice returns the members in enumeration order.
func (s Genres) Slice() []Genre {
	out := make([]Genre, 0, s.Len())
	for g := Genre(0); g < numGenres; g++ {
		if s.Has(g) {
			out = append(out, g)
		}
	}

	return out
}

func (s Genres) String() string {
	var sb strings.Builder
	for i, g := range s.Slice() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(g.String())
	}

	return sb.String()
}

package imdb

// TitleType is the titleType column of title.basics.tsv.
type TitleType uint8

const (
	TypeShort TitleType = iota + 1
	TypeMovie
	TypeTVEpisode
	TypeTVMiniSeries
	TypeTVMovie
	TypeTVPilot
	TypeTVSeries
	TypeTVShort
	TypeTVSpecial
	TypeVideo
	TypeVideoGame
)

var titleTypeNames = [...]string{
	TypeShort:        "short",
	TypeMovie:        "movie",
	TypeTVEpisode:    "tvEpisode",
	TypeTVMiniSeries: "tvMiniSeries",
	TypeTVMovie:      "tvMovie",
	TypeTVPilot:      "tvPilot",
	TypeTVSeries:     "tvSeries",
	TypeTVShort:      "tvShort",
	TypeTVSpecial:    "tvSpecial",
	TypeVideo:        "video",
	TypeVideoGame:    "videoGame",
}

// ParseTitleType decodes a titleType token.
func ParseTitleType(b []byte) (TitleType, error) {
	// Dump tokens are short; a linear scan beats hashing here.
	for t := TypeShort; t <= TypeVideoGame; t++ {
		if string(b) == titleTypeNames[t] {
			return t, nil
		}
	}

	return 0, fieldError(ErrInvalidClassification, b)
}

func (t TitleType) String() string {
	if t < TypeShort || t > TypeVideoGame {
		return "unknown"
	}

	return titleTypeNames[t]
}

// IsMovie reports whether titles of this type are indexed as movies.
func (t TitleType) IsMovie() bool {
	switch t {
	case TypeMovie, TypeTVMovie, TypeShort, TypeTVShort, TypeTVSpecial, TypeVideo:
		return true
	default:
		return false
	}
}

// IsSeries reports whether titles of this type are indexed as series.
func (t TitleType) IsSeries() bool {
	return t == TypeTVSeries || t == TypeTVMiniSeries
}

// Classification returns the index partition a title type belongs to.
func (t TitleType) Classification() Classification {
	switch {
	case t.IsMovie():
		return Movies
	case t.IsSeries():
		return Series
	default:
		return Other
	}
}

// Classification partitions titles into the two indexed kinds.
type Classification uint8

const (
	// Other titles (episodes, pilots, games) are never indexed.
	Other Classification = iota
	Movies
	Series
)

func (c Classification) String() string {
	switch c {
	case Movies:
		return "movies"
	case Series:
		return "series"
	default:
		return "other"
	}
}

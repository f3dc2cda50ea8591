package imdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u16(v uint16) *uint16 { return &v }

func TestParseTitle(t *testing.T) {
	title, err := ParseTitle([]byte("tt0000001\tmovie\tTest\tTest\t0\t2000\t\\N\t90\tDrama"))
	require.NoError(t, err)

	assert.Equal(t, Title{
		ID:             1,
		Type:           TypeMovie,
		PrimaryTitle:   "Test",
		OriginalTitle:  "Test",
		StartYear:      u16(2000),
		RuntimeMinutes: u16(90),
		Genres:         NewGenres(Drama),
	}, title)
	assert.Equal(t, Movies, title.Classification())
}

func TestParseTitle_AllOptionalAbsent(t *testing.T) {
	title, err := ParseTitle([]byte("tt0000002\ttvSeries\tOther\tAndere\t1\t\\N\t\\N\t\\N\t\\N"))
	require.NoError(t, err)

	assert.Equal(t, Series, title.Classification())
	assert.Equal(t, "Other", title.PrimaryTitle)
	assert.Equal(t, "Andere", title.OriginalTitle)
	assert.True(t, title.IsAdult)
	assert.Nil(t, title.StartYear)
	assert.Nil(t, title.EndYear)
	assert.Nil(t, title.RuntimeMinutes)
	assert.True(t, title.Genres.IsEmpty())
	assert.Equal(t, uint16(0), title.Year())
}

func TestParseTitle_OtherIsNotDecoded(t *testing.T) {
	// Only the first two fields are looked at for episodes.
	title, err := ParseTitle([]byte("tt0000003\ttvEpisode\tgarbage"))
	require.NoError(t, err)
	assert.Equal(t, Other, title.Classification())
	assert.Equal(t, TitleID(3), title.ID)
}

func TestParseTitle_CarriageReturn(t *testing.T) {
	title, err := ParseTitle([]byte("tt0000001\tmovie\tA\tA\t0\t1999\t\\N\t\\N\tAction,Sci-Fi\r"))
	require.NoError(t, err)
	assert.Equal(t, NewGenres(Action, SciFi), title.Genres)
}

func TestParseTitle_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"empty", "", ErrInvalidIdentifier},
		{"only id", "tt0000001", ErrUnexpectedEOF},
		{"bad prefix", "nm0000001\tmovie\tA\tA\t0\t2000\t\\N\t90\tDrama", ErrInvalidIdentifier},
		{"no digits", "tt\tmovie\tA\tA\t0\t2000\t\\N\t90\tDrama", ErrInvalidIdentifier},
		{"bad type", "tt0000001\tfilm\tA\tA\t0\t2000\t\\N\t90\tDrama", ErrInvalidClassification},
		{"truncated", "tt0000001\tmovie\tA\tA\t0\t2000", ErrUnexpectedEOF},
		{"adult", "tt0000001\tmovie\tA\tA\t2\t2000\t\\N\t90\tDrama", ErrInvalidAdultFlag},
		{"year", "tt0000001\tmovie\tA\tA\t0\t20x0\t\\N\t90\tDrama", ErrInvalidYear},
		{"year overflow", "tt0000001\tmovie\tA\tA\t0\t70000\t\\N\t90\tDrama", ErrInvalidYear},
		{"end year", "tt0000001\tmovie\tA\tA\t0\t2000\t-1\t90\tDrama", ErrInvalidEndYear},
		{"runtime", "tt0000001\tmovie\tA\tA\t0\t2000\t\\N\t\t\tDrama", ErrInvalidRuntime},
		{"genre", "tt0000001\tmovie\tA\tA\t0\t2000\t\\N\t90\tDrama,Cooking", ErrInvalidGenre},
		{"genre case", "tt0000001\tmovie\tA\tA\t0\t2000\t\\N\t90\tdrama", ErrInvalidGenre},
		{"genre empty", "tt0000001\tmovie\tA\tA\t0\t2000\t\\N\t90\t", ErrInvalidGenre},
		{"genre trailing comma", "tt0000001\tmovie\tA\tA\t0\t2000\t\\N\t90\tDrama,", ErrInvalidGenre},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTitle([]byte(tt.line))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTitleTypeClassification(t *testing.T) {
	for _, typ := range []TitleType{TypeMovie, TypeTVMovie, TypeShort, TypeTVShort, TypeTVSpecial, TypeVideo} {
		assert.True(t, typ.IsMovie(), typ.String())
		assert.False(t, typ.IsSeries(), typ.String())
	}

	for _, typ := range []TitleType{TypeTVSeries, TypeTVMiniSeries} {
		assert.Equal(t, Series, typ.Classification(), typ.String())
	}

	for _, typ := range []TitleType{TypeTVEpisode, TypeTVPilot, TypeVideoGame} {
		assert.Equal(t, Other, typ.Classification(), typ.String())
	}
}

func TestParseTitleType_RoundTrip(t *testing.T) {
	for typ := TypeShort; typ <= TypeVideoGame; typ++ {
		got, err := ParseTitleType([]byte(typ.String()))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
}

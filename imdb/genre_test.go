package imdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenres(t *testing.T) {
	gs, err := ParseGenres([]byte("Drama,Film-Noir,Drama"))
	require.NoError(t, err)

	assert.Equal(t, 2, gs.Len())
	assert.True(t, gs.Has(Drama))
	assert.True(t, gs.Has(FilmNoir))
	assert.False(t, gs.Has(Comedy))
	assert.Equal(t, "Drama, Film-Noir", gs.String())
}

func TestParseGenres_Sentinel(t *testing.T) {
	gs, err := ParseGenres([]byte(`\N`))
	require.NoError(t, err)
	assert.True(t, gs.IsEmpty())
	assert.Empty(t, gs.Slice())
}

func TestParseGenres_Unknown(t *testing.T) {
	for _, in := range []string{"", "Drama,", ",Drama", "Drama,,Comedy", "Cooking"} {
		_, err := ParseGenres([]byte(in))
		assert.ErrorIs(t, err, ErrInvalidGenre, "input %q", in)
	}
}

func TestGenres_SetOps(t *testing.T) {
	a := NewGenres(Action, Comedy)
	b := NewGenres(Comedy, Western)

	u := a.Union(b)
	assert.Equal(t, []Genre{Action, Comedy, Western}, u.Slice())
	assert.True(t, u.Contains(a))
	assert.False(t, a.Contains(b))
	assert.True(t, a.Contains(0))
}

func TestAllGenres_RoundTrip(t *testing.T) {
	all := AllGenres()
	require.Len(t, all, int(numGenres))

	for _, g := range all {
		got, err := ParseGenre([]byte(g.String()))
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
}

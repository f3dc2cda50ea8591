package imdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTitleID(t *testing.T) {
	id, err := ParseTitleID([]byte("tt0133093"))
	require.NoError(t, err)
	assert.Equal(t, TitleID(133093), id)
	assert.Equal(t, "tt0133093", id.String())
	assert.Equal(t, "https://www.imdb.com/title/tt0133093/", id.URL())

	// Padding does not change identity.
	short, err := ParseTitleID([]byte("tt133093"))
	require.NoError(t, err)
	assert.Equal(t, id, short)

	// Wide identifiers render without truncation.
	wide := MustParseTitleID("tt12345678")
	assert.Equal(t, "tt12345678", wide.String())
}

func TestParseTitleID_Invalid(t *testing.T) {
	for _, raw := range []string{"", "t", "tt", "TT0000001", "tt-1", "tt12a", "tt99999999999999999999999"} {
		_, err := ParseTitleID([]byte(raw))
		assert.ErrorIs(t, err, ErrInvalidIdentifier, raw)
	}
}

func TestTitleID_Text(t *testing.T) {
	var id TitleID
	require.NoError(t, id.UnmarshalText([]byte("tt0000042")))
	assert.Equal(t, TitleID(42), id)

	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "tt0000042", string(text))

	assert.Error(t, id.UnmarshalText([]byte("42")))
}

func TestDuplicateIDError(t *testing.T) {
	var err error = &DuplicateIDError{ID: 1}
	assert.ErrorIs(t, err, ErrDuplicateIdentifier)
	assert.Equal(t, "duplicate title identifier: tt0000001", err.Error())
}

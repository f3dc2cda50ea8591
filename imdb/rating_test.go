package imdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	id, r, err := ParseRating([]byte("tt0000001\t8.4\t15000"))
	require.NoError(t, err)

	assert.Equal(t, TitleID(1), id)
	assert.Equal(t, Rating{Score: 84, Votes: 15000}, r)
	assert.InDelta(t, 8.4, r.Value(), 1e-9)
	assert.Equal(t, "8.4 (15000 votes)", r.String())
}

func TestParseRating_Bounds(t *testing.T) {
	_, r, err := ParseRating([]byte("tt0000001\t10.0\t1"))
	require.NoError(t, err)
	assert.Equal(t, uint8(100), r.Score)

	_, r, err = ParseRating([]byte("tt0000001\t0.0\t0"))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), r.Score)
}

func TestParseRating_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"id", "x\t8.4\t1", ErrInvalidIdentifier},
		{"missing rating", "tt0000001", ErrUnexpectedEOF},
		{"missing votes", "tt0000001\t8.4", ErrUnexpectedEOF},
		{"no fraction", "tt0000001\t8\t1", ErrInvalidRating},
		{"two fraction digits", "tt0000001\t8.45\t1", ErrInvalidRating},
		{"leading dot", "tt0000001\t.4\t1", ErrInvalidRating},
		{"too large", "tt0000001\t10.1\t1", ErrInvalidRating},
		{"letters", "tt0000001\tab.c\t1", ErrInvalidRating},
		{"votes", "tt0000001\t8.4\t-3", ErrInvalidVoteCount},
		{"empty votes", "tt0000001\t8.4\t", ErrInvalidVoteCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseRating([]byte(tt.line))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

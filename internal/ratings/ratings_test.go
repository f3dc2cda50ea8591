package ratings

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tvrank/imdb"
)

func TestTable_InsertGet(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.Insert([]byte("tt0000001\t8.4\t15000")))

	r, ok := tbl.Get(1)
	require.True(t, ok)
	assert.Equal(t, imdb.Rating{Score: 84, Votes: 15000}, r)

	_, ok = tbl.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_Duplicate(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.Insert([]byte("tt0000001\t8.4\t15000")))

	err := tbl.Insert([]byte("tt0000001\t1.0\t1"))
	require.ErrorIs(t, err, imdb.ErrDuplicateIdentifier)

	// The first rating wins.
	r, _ := tbl.Get(1)
	assert.Equal(t, uint8(84), r.Score)
}

func TestLoad(t *testing.T) {
	dump := "tconst\taverageRating\tnumVotes\n" +
		"tt0000001\t5.7\t1960\n" +
		"\n" +
		"tt0000002\t5.8\t264\n"

	tbl, err := Load(context.Background(), []byte(dump))
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	r, ok := tbl.Get(imdb.MustParseTitleID("tt0000002"))
	require.True(t, ok)
	assert.Equal(t, imdb.Rating{Score: 58, Votes: 264}, r)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), []byte("header\ntt0000001\t5.7\tmany\n"))
	require.ErrorIs(t, err, imdb.ErrInvalidVoteCount)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Load(context.Background(), []byte("header\ntt0000001\t5.7\t1\ntt0000001\t5.7\t1"))
	require.ErrorIs(t, err, imdb.ErrDuplicateIdentifier)

	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)

	tbl, err := Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestLoad_Canceled(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("header\n")
	for i := 1; i <= 2*checkEvery; i++ {
		fmt.Fprintf(&sb, "tt%07d\t7.0\t%d\n", i, i)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, []byte(sb.String()))
	require.ErrorIs(t, err, context.Canceled)

	tbl, err := Load(context.Background(), []byte(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, 2*checkEvery, tbl.Len())
}

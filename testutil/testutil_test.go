package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Reproducible(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}

	first := a.Intn(1 << 30)
	a.Reset()
	for i := 0; i < 100; i++ {
		a.Intn(1000)
	}
	assert.Equal(t, first, a.Intn(1<<30))
	assert.Equal(t, int64(42), a.Seed())

	for i := 0; i < 100; i++ {
		v := a.Between(1900, 2025)
		require.GreaterOrEqual(t, v, 1900)
		require.LessOrEqual(t, v, 2025)
	}
}

func TestRow_Line(t *testing.T) {
	r := Row{ID: 1, Type: "movie", Primary: "Test", Year: 2000, Runtime: 90, Genres: []string{"Drama"}}
	assert.Equal(t, "tt0000001\tmovie\tTest\tTest\t0\t2000\t\\N\t90\tDrama", r.Line())

	r = Row{ID: 2, Type: "tvSeries", Primary: "A", Original: "B", Adult: true}
	assert.Equal(t, "tt0000002\ttvSeries\tA\tB\t1\t\\N\t\\N\t\\N\t\\N", r.Line())
}

func TestRandomDump(t *testing.T) {
	d := RandomDump(NewRNG(7), 50)

	lines := bytes.Split(bytes.TrimSuffix(d.Titles(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 51)
	assert.Equal(t, TitlesHeader, string(lines[0]))
	assert.Len(t, d.Rows(), 50)

	again := RandomDump(NewRNG(7), 50)
	assert.Equal(t, d.Titles(), again.Titles())
	assert.Equal(t, d.Ratings(), again.Ratings())

	assert.True(t, bytes.HasPrefix(d.Ratings(), []byte(RatingsHeader+"\n")))
}

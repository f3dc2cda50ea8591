package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_PushGet(t *testing.T) {
	a := New[string]()
	assert.Equal(t, 0, a.Len())

	c0 := a.Push("a")
	c1 := a.Push("b")
	assert.Equal(t, Cookie(0), c0)
	assert.Equal(t, Cookie(1), c1)
	assert.Equal(t, 2, a.Len())

	v, ok := a.Get(c1)
	require.True(t, ok)
	assert.Equal(t, "b", *v)

	_, ok = a.Get(Cookie(2))
	assert.False(t, ok)
	assert.Panics(t, func() { a.MustGet(Cookie(7)) })
}

func TestArena_StableAcrossChunks(t *testing.T) {
	a := New[int]()

	first := a.MustGet(a.Push(-1))
	for i := 1; i < 3*chunkSize+5; i++ {
		c := a.Push(i)
		require.Equal(t, Cookie(i), c)
	}

	// Growing never moves earlier items.
	assert.Same(t, first, a.MustGet(0))
	assert.Equal(t, chunkSize+1, *a.MustGet(Cookie(chunkSize + 1)))

	var n int
	a.All(func(c Cookie, v *int) bool {
		if c > 0 {
			require.Equal(t, int(c), *v)
		}
		n++
		return true
	})
	assert.Equal(t, a.Len(), n)
}

func TestArena_AllStops(t *testing.T) {
	a := New[int]()
	for i := 0; i < 10; i++ {
		a.Push(i)
	}

	var seen []int
	a.All(func(_ Cookie, v *int) bool {
		seen = append(seen, *v)
		return len(seen) < 3
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

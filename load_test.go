package tvrank

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCursor(t *testing.T) {
	c := newLineCursor([]byte("header\na\nb\n\nc"))

	first, batch := c.claim(2, nil)
	assert.Equal(t, 1, first)
	assert.Equal(t, []string{"a", "b"}, toStrings(batch))

	first, batch = c.claim(10, batch[:0])
	assert.Equal(t, 3, first)
	assert.Equal(t, []string{"", "c"}, toStrings(batch))

	_, batch = c.claim(10, batch[:0])
	assert.Empty(t, batch)
}

func TestLineCursor_HeaderOnly(t *testing.T) {
	for _, buf := range []string{"", "header", "header\n"} {
		c := newLineCursor([]byte(buf))
		_, batch := c.claim(10, nil)
		assert.Empty(t, batch, "%q", buf)
	}
}

func TestLineCursor_ConcurrentClaimsCoverEveryLine(t *testing.T) {
	const n = 10_000

	var sb strings.Builder
	sb.WriteString("header\n")
	for i := 0; i < n; i++ {
		sb.WriteString("x\n")
	}

	c := newLineCursor([]byte(sb.String()))

	var (
		mu   sync.Mutex
		seen = make([]int, n+1)
		wg   sync.WaitGroup
	)

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var batch [][]byte
			for {
				var first int
				first, batch = c.claim(33, batch[:0])
				if len(batch) == 0 {
					return
				}

				mu.Lock()
				for j := range batch {
					seen[first+j]++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	for i := 1; i <= n; i++ {
		require.Equal(t, 1, seen[i], "line %d", i)
	}
	assert.Equal(t, 0, seen[0])
}

func toStrings(lines [][]byte) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = string(l)
	}
	return out
}

package arena

import "fmt"

const (
	chunkShift = 12
	chunkSize  = 1 << chunkShift
	chunkMask  = chunkSize - 1
)

// Cookie is a dense, zero-based position inside one Arena.
type Cookie uint32

func (c Cookie) String() string { return fmt.Sprintf("#%d", uint32(c)) }

// Arena is an append-only sequence of T.
//
// Arena is not safe for concurrent Push; concurrent Get is safe once pushing
// has stopped.
type Arena[T any] struct {
	chunks [][]T
	n      int
}

// New returns an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Push appends v and returns its cookie.
func (a *Arena[T]) Push(v T) Cookie {
	if a.n&chunkMask == 0 {
		a.chunks = append(a.chunks, make([]T, 0, chunkSize))
	}

	last := len(a.chunks) - 1
	a.chunks[last] = append(a.chunks[last], v)

	c := Cookie(a.n)
	a.n++

	return c
}

// Get returns a pointer to the item for c, or false if c was not issued by this arena.
func (a *Arena[T]) Get(c Cookie) (*T, bool) {
	i := int(c)
	if i >= a.n {
		return nil, false
	}

	return &a.chunks[i>>chunkShift][i&chunkMask], true
}

// MustGet is like Get but panics on a foreign cookie.
func (a *Arena[T]) MustGet(c Cookie) *T {
	v, ok := a.Get(c)
	if !ok {
		panic(fmt.Sprintf("arena: cookie %s out of range [0,%d)", c, a.n))
	}

	return v
}

// Len returns the number of items pushed.
func (a *Arena[T]) Len() int { return a.n }

// All calls yield for every item in insertion order until yield returns false.
func (a *Arena[T]) All(yield func(Cookie, *T) bool) {
	for ci := range a.chunks {
		chunk := a.chunks[ci]
		for j := range chunk {
			if !yield(Cookie(ci<<chunkShift+j), &chunk[j]) {
				return
			}
		}
	}
}

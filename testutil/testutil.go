package testutil

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// RNG is a seeded, mutex-guarded random source. Identical seeds replay
// identical dumps.
type RNG struct {
	mu   sync.Mutex
	seed int64
	src  *rand.PCG
	rand *rand.Rand
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return &RNG{seed: seed, src: src, rand: rand.New(src)}
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	r.src.Seed(uint64(r.seed), uint64(r.seed)^0x9e3779b97f4a7c15)
	r.mu.Unlock()
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a value in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Between returns a value in [lo,hi].
func (r *RNG) Between(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Bool returns true with probability p.
func (r *RNG) Bool(p float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64() < p
}

// Phrase joins n words drawn from vocab with single spaces.
func (r *RNG) Phrase(vocab []string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = Pick(r, vocab)
	}
	return strings.Join(parts, " ")
}

// Pick returns a random element of choices.
func Pick[T any](r *RNG, choices []T) T {
	return choices[r.Intn(len(choices))]
}

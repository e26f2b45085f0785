package core

import (
	"hash/fnv"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// Reset rewinds the stream so the same sequence of draws can be replayed.
type RNG struct {
	seed int64
	src  *rand.PCG
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewPCG(uint64(seed), 0)
	return &RNG{seed: seed, src: src, r: rand.New(src)}
}

// Reset reseeds the stream. Draws after Reset(s) match those of NewRNG(s).
func (r *RNG) Reset(seed int64) {
	r.seed = seed
	r.src.Seed(uint64(seed), 0)
}

// Seed reports the seed of the current stream.
func (r *RNG) Seed() int64 { return r.seed }

// Float returns a uniform value in [0, 1).
func (r *RNG) Float() float64 {
	return r.r.Float64()
}

// Between returns a uniform value in [a, b). Reversed bounds are allowed and
// yield a value in (b, a].
func (r *RNG) Between(a, b float64) float64 {
	return a + r.r.Float64()*(b-a)
}

// IntBetween returns a uniform integer in [a, b). It returns a when b <= a.
func (r *RNG) IntBetween(a, b int) int {
	if b <= a {
		return a
	}
	return a + r.r.IntN(b-a)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// SeedFromHash folds an opaque token (for example an fxhash string) into a
// seed. Equal tokens always give equal seeds.
func SeedFromHash(hash string) int64 {
	h := fnv.New64a()
	h.Write([]byte(hash))
	return int64(h.Sum64())
}

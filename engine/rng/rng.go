// Package rng provides a deterministic random source with position
// tracking. Position increments with every draw, enabling exact
// save/restore of a session's random stream.
package rng

import "math/rand"

// RNG wraps math/rand.Rand with deterministic position tracking.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a new deterministic RNG from a seed.
func New(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Range returns a random integer in [lo, hi] inclusive.
func (r *RNG) Range(lo, hi int) int {
	r.pos++
	return lo + r.src.Intn(hi-lo+1)
}

// Percent returns a uniform float in [0, 100). Success rolls compare it
// against a percent threshold.
func (r *RNG) Percent() float64 {
	r.pos++
	return r.src.Float64() * 100
}

// Chance returns true with probability p (p in [0,1]).
func (r *RNG) Chance(p float64) bool {
	r.pos++
	return r.src.Float64() < p
}

// Variance returns a damage variance multiplier in [0.8, 1.2).
func (r *RNG) Variance() float64 {
	r.pos++
	return 0.8 + r.src.Float64()*0.4
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// Restore creates an RNG and advances it to the given position. This
// reproduces the exact random stream for save/load.
func Restore(seed int64, position int64) *RNG {
	rng := New(seed)
	for i := int64(0); i < position; i++ {
		rng.src.Int63()
	}
	rng.pos = position
	return rng
}

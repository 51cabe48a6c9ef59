package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64In returns a value in [lo, hi). Swapped bounds are tolerated.
func (r *RNG) Float64In(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// IntIn returns a value in [lo, hi] inclusive.
func (r *RNG) IntIn(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// PointIn returns a random point inside the rectangle [0,w)x[0,h).
func (r *RNG) PointIn(w, h float64) Point {
	return Point{X: r.Float64In(0, w), Y: r.Float64In(0, h)}
}

// Int64 returns a non-negative pseudo-random 63-bit integer, handy for seeds.
func (r *RNG) Int64() int64 { return r.r.Int64() }

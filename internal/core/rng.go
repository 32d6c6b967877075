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

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillRandom populates g with living cells at the given density.
func FillRandom(r *RNG, g *Grid, density float64) {
	for i := range g.data {
		g.data[i] = Dead
		if r.Chance(density) {
			g.data[i] = Alive
		}
	}
}

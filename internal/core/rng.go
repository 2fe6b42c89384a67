package core

import "math/rand/v2"

// RNG drives the editor's random board fill. The same seed always paints
// the same board.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a PCG source so fills are reproducible across runs.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool reports whether a cell should start alive, with probability 1/2.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

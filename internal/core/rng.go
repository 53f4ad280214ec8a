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

// Uint8 returns a uniformly distributed byte.
func (r *RNG) Uint8() uint8 {
	return uint8(r.r.Uint32())
}

// FillBytes fills the buffer with uniformly distributed bytes.
func (r *RNG) FillBytes(buf []uint8) {
	for i := range buf {
		buf[i] = r.Uint8()
	}
}

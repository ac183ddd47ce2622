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

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillDensity fills the buffer with 1s at the given density and 0s
// elsewhere. Densities at or below 0 clear the buffer; at or above 1
// they saturate it.
func FillDensity(r *rand.Rand, buf []uint8, density float64) {
	switch {
	case density <= 0:
		for i := range buf {
			buf[i] = 0
		}
	case density >= 1:
		for i := range buf {
			buf[i] = 1
		}
	default:
		for i := range buf {
			if r.Float64() < density {
				buf[i] = 1
			} else {
				buf[i] = 0
			}
		}
	}
}

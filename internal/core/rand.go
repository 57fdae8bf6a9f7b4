package core

import "math/rand"

// NewRand returns a seeded RNG. Games own their RNG so that a seed plus an
// input sequence fully determines a run.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandRange returns a uniform float in [min, max).
// A degenerate range (max <= min) returns min.
func RandRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RandSigned returns a uniform float in [-mag, mag).
func RandSigned(rng *rand.Rand, mag float64) float64 {
	return (rng.Float64() - 0.5) * 2 * mag
}

package core

import "math/rand"

// Rand is the source of randomness handed to game step functions.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded deterministic generator.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, must be reproducible
}

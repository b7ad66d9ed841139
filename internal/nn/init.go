package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Uniform returns a parameter leaf drawn from U[lo, hi).
//
// The generator is passed in explicitly so tests can seed it; there is no
// package-level random state.
func Uniform(rng *rand.Rand, lo, hi float64) *autodiff.Value {
	return autodiff.New(lo + rng.Float64()*(hi-lo))
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Weight initialization, not security-critical
}

// Package util provides helpers for generating reproducible random vectors
// in tests and benchmarks.
package util

import (
	"math/rand"

	"github.com/hupe1980/vect"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Scalar returns a random scalar in the half-open interval [-1, 1).
func (r *RNG) Scalar() vect.Scalar {
	return 2*r.rand.Float64() - 1
}

// Vector2 returns a random Vector2 with components in [-1, 1).
func (r *RNG) Vector2() vect.Vector2 {
	return vect.NewVector2(r.Scalar(), r.Scalar())
}

// Vector3 returns a random Vector3 with components in [-1, 1).
func (r *RNG) Vector3() vect.Vector3 {
	return vect.NewVector3(r.Scalar(), r.Scalar(), r.Scalar())
}

// Vector2s generates num random Vector2 values using the given RNG.
func (r *RNG) Vector2s(num int) []vect.Vector2 {
	vectors := make([]vect.Vector2, num)
	for i := range vectors {
		vectors[i] = r.Vector2()
	}

	return vectors
}

// Vector3s generates num random Vector3 values using the given RNG.
func (r *RNG) Vector3s(num int) []vect.Vector3 {
	vectors := make([]vect.Vector3, num)
	for i := range vectors {
		vectors[i] = r.Vector3()
	}

	return vectors
}

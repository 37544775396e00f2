package mmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExactTolerance_IsStrictLess verifies the integer policy never treats
// equal or inverted values as less.
func TestExactTolerance_IsStrictLess(t *testing.T) {
	tol := newExactTolerance[int64]()
	assert.True(t, tol.Less(1, 2))
	assert.False(t, tol.Less(2, 2))
	assert.False(t, tol.Less(3, 2))
}

// TestEpsilonTolerance_AbsorbsNoise verifies two floats within epsilon of
// each other are never treated as strictly ordered, preventing rounding
// noise from flipping a relaxation decision (spec §4.1).
func TestEpsilonTolerance_AbsorbsNoise(t *testing.T) {
	tol := newEpsilonTolerance[float64](1e-6)
	assert.False(t, tol.Less(1.0000001, 1.0))
	assert.True(t, tol.Less(0.9, 1.0))
}

// TestEpsilonTolerance_DefaultsWhenNonPositive verifies a non-positive
// epsilon falls back to DefaultEpsilon instead of becoming an exact
// comparator by accident.
func TestEpsilonTolerance_DefaultsWhenNonPositive(t *testing.T) {
	tol := newEpsilonTolerance[float64](0).(epsilonTolerance[float64])
	assert.Equal(t, float64(DefaultEpsilon), tol.epsilon)
}

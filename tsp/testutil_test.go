// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package. Intentionally minimal; anything with real logic lives in
// the focused test files.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourlab/geom"
	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/require"
)

// unitSquare10 is the spec'd four-city scenario: corners of a 10×10 square.
// Every solver must return the perimeter tour of length 40.
func unitSquare10() geom.Instance {
	return geom.Instance{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
		{X: 10, Y: 0},
	}
}

// requireClosedTour asserts the closed-cycle invariants for n cities:
// length n+1, anchored at 0, permutation prefix.
func requireClosedTour(t *testing.T, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(tour, n))
}

// allSolvers enumerates the three strategies with their display names.
func allSolvers() map[string]tsp.Solver {
	return map[string]tsp.Solver{
		"exact":  tsp.Exact,
		"greedy": tsp.Greedy,
		"approx": tsp.Approx,
	}
}

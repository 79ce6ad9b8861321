// Package tsp_test verifies the brute-force solver: global optimality on
// hand-checkable instances, degenerate sizes, enumeration order, and the
// cooperative deadline.
package tsp_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/tourlab/geom"
	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/require"
)

func TestExact_SquarePerimeter(t *testing.T) {
	res, err := tsp.Exact(unitSquare10(), tsp.DefaultOptions())
	require.NoError(t, err)
	requireClosedTour(t, res.Tour, 4)
	require.Equal(t, 40.0, res.Length)
	// First minimum under lexicographic enumeration: the identity perimeter.
	require.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
}

func TestExact_SingleCity(t *testing.T) {
	res, err := tsp.Exact(geom.Instance{{X: 3, Y: 4}}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, res.Tour)
	require.Equal(t, 0.0, res.Length)
}

func TestExact_TwoCitiesRoundTrip(t *testing.T) {
	inst := geom.Instance{{X: 0, Y: 0}, {X: 3, Y: 4}}

	res, err := tsp.Exact(inst, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0}, res.Tour)
	// Round trip: out and back over the 3-4-5 hypotenuse.
	require.Equal(t, 10.0, res.Length)
}

func TestExact_EmptyInstance(t *testing.T) {
	_, err := tsp.Exact(geom.Instance{}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrEmptyInstance)
}

func TestExact_NegativeTimeLimit(t *testing.T) {
	_, err := tsp.Exact(unitSquare10(), tsp.Options{TimeLimit: -time.Second})
	require.ErrorIs(t, err, tsp.ErrBadTimeLimit)
}

func TestExact_CooperativeDeadline(t *testing.T) {
	// 12 cities ⇒ 11! ≈ 4·10⁷ permutations; a nanosecond budget must trip
	// the sparse deadline check long before enumeration completes.
	inst := geom.Random(12, 1000, 5)

	_, err := tsp.Exact(inst, tsp.Options{TimeLimit: time.Nanosecond})
	require.ErrorIs(t, err, tsp.ErrTimeLimit)
}

func TestExact_DeterministicTieBreak(t *testing.T) {
	// Perfectly symmetric instance: many optimal tours exist; repeated runs
	// must return the identical (first-found) one.
	inst := unitSquare10()

	a, err := tsp.Exact(inst, tsp.DefaultOptions())
	require.NoError(t, err)
	b, err := tsp.Exact(inst, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, a.Tour, b.Tour)
	require.Equal(t, a.Length, b.Length)
}

func TestNextPermutation_Order(t *testing.T) {
	// Lexicographic successor chain over three elements.
	p := []int{1, 2, 3}
	want := [][]int{
		{1, 3, 2},
		{2, 1, 3},
		{2, 3, 1},
		{3, 1, 2},
		{3, 2, 1},
	}

	var i int
	for i = 0; i < len(want); i++ {
		require.True(t, tsp.TestHookNextPermutation(p))
		require.Equal(t, want[i], p)
	}
	// Descending order is the last permutation.
	require.False(t, tsp.TestHookNextPermutation(p))
}

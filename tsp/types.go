package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. The suite returns only these from user-facing entry points;
// no fmt.Errorf where a sentinel suffices.
var (
	// ErrEmptyInstance is returned when a solver receives zero cities.
	ErrEmptyInstance = errors.New("tsp: empty instance")

	// ErrBadTour is returned when a tour violates the closed-cycle contract
	// (wrong length, duplicates, bad closure, index out of range).
	ErrBadTour = errors.New("tsp: malformed tour")

	// ErrOddParity signals an internal invariant violation: the odd-degree
	// vertex set of a spanning tree was found to have odd cardinality, which
	// the handshake lemma forbids. It indicates a defect in the MST or the
	// degree counting and must never be swallowed.
	ErrOddParity = errors.New("tsp: odd-degree vertex set has odd cardinality")

	// ErrTimeLimit is returned by solvers that hit their cooperative deadline
	// before completing. The harness maps it to a timed-out run.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrBadTimeLimit is returned for a negative time budget.
	ErrBadTimeLimit = errors.New("tsp: negative time limit")

	// ErrUnknownAlgorithm is returned by the dispatcher for an enum value it
	// does not recognize.
	ErrUnknownAlgorithm = errors.New("tsp: unknown algorithm")
)

// Algorithm selects a tour-construction strategy.
type Algorithm uint8

const (
	// BruteForce enumerates all permutations and is exact; O((n-1)!) time.
	BruteForce Algorithm = iota

	// NearestNeighbor greedily extends the tour to the closest unvisited
	// city; fast, deterministic, no optimality guarantee.
	NearestNeighbor

	// Christofides builds MST + odd-vertex matching + Eulerian shortcut;
	// ≤ 1.5×OPT under the triangle inequality (exact matching path).
	Christofides
)

// String returns the canonical display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BruteForce:
		return "Brute Force"
	case NearestNeighbor:
		return "Nearest Neighbor"
	case Christofides:
		return "Christofides"
	default:
		return "Unknown"
	}
}

// Result holds the outcome of one solve.
type Result struct {
	// Tour is the closed cycle of vertex indices, starting and ending at 0.
	// For n cities, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	Tour []int

	// Length is the total Euclidean length of the cycle, rounded to 1e-9.
	Length float64
}

// Options carries per-solve policy. The zero value is valid: no time budget,
// brute-force algorithm.
type Options struct {
	// Algo selects the strategy when solving through the dispatcher.
	Algo Algorithm

	// TimeLimit is a soft wall-clock budget. 0 means unlimited. Solvers with
	// unbounded runtime (BruteForce) check it cooperatively and return
	// ErrTimeLimit on expiry; polynomial solvers run to completion.
	TimeLimit time.Duration
}

// DefaultOptions returns the canonical defaults: BruteForce, no time budget.
func DefaultOptions() Options {
	return Options{Algo: BruteForce, TimeLimit: 0}
}

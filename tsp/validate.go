// Package tsp - validation utilities shared by all solvers.
//
// Small, side-effect-free helpers that:
//  1. Validate Options (time budget, known algorithm).
//  2. Validate instances (non-empty).
//  3. Validate tours (closed-cycle invariants).
//
// Only sentinel errors from types.go are returned; no logging, no panics on
// user input.
package tsp

import "github.com/katalvlaran/tourlab/geom"

// validateInstance rejects empty instances. Callers must guarantee n ≥ 1.
//
// Complexity: O(1).
func validateInstance(inst geom.Instance) error {
	if len(inst) == 0 {
		return ErrEmptyInstance
	}
	return nil
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Negative durations are undefined; 0 means unlimited.
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	switch opts.Algo {
	case BruteForce, NearestNeighbor, Christofides:
		return nil
	default:
		return ErrUnknownAlgorithm
	}
}

// ValidateTour enforces the closed-cycle invariants for n cities:
//
//	len(tour) == n+1, tour[0] == tour[n] == 0,
//	each vertex v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid, ErrBadTour otherwise.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return ErrBadTour
	}
	if len(tour) != n+1 {
		return ErrBadTour
	}
	if tour[0] != 0 || tour[n] != 0 {
		return ErrBadTour
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrBadTour
		}
		if seen[v] {
			return ErrBadTour
		}
		seen[v] = true
	}

	return nil
}

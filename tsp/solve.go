// Package tsp - unified dispatcher for the solver suite.
package tsp

import "github.com/katalvlaran/tourlab/geom"

// Solver is the pure per-solver contract: instance in, (tour, length) out.
// All three solvers in this package satisfy it.
type Solver func(inst geom.Instance, opts Options) (Result, error)

// Solve validates the instance and options once, then routes to the solver
// selected by opts.Algo.
//
// Errors: ErrEmptyInstance, ErrBadTimeLimit, ErrUnknownAlgorithm, plus any
// error of the routed solver.
//
// Complexity: validation O(1); the rest per algorithm (see exact.go,
// greedy.go, approx.go).
func Solve(inst geom.Instance, opts Options) (Result, error) {
	if err := validateInstance(inst); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	switch opts.Algo {
	case BruteForce:
		return Exact(inst, opts)
	case NearestNeighbor:
		return Greedy(inst, opts)
	case Christofides:
		return Approx(inst, opts)
	default:
		return Result{}, ErrUnknownAlgorithm
	}
}

// SolverFor returns the Solver function behind an Algorithm value, or nil
// for an unknown enum. Useful for harness callers that iterate a selection.
func SolverFor(algo Algorithm) Solver {
	switch algo {
	case BruteForce:
		return Exact
	case NearestNeighbor:
		return Greedy
	case Christofides:
		return Approx
	default:
		return nil
	}
}

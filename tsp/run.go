// Package tsp - execution harness.
//
// Run is the sole entry point consumers use to execute a solver under a time
// budget. Two mechanisms cooperate:
//
//   - Post-hoc filter: the solver runs to natural completion; if the measured
//     wall-clock time exceeds the limit, the result is discarded and only the
//     elapsed duration is reported. This mirrors the advisory nature of the
//     original design — polynomial solvers are never interrupted mid-flight.
//
//   - Cooperative deadline: the limit is plumbed into Options.TimeLimit, so
//     solvers with unbounded runtime (Exact) abort early with ErrTimeLimit
//     instead of consuming wall-clock time they can never get refunded.
//
// Timed-out and errored runs are distinct outcomes: ErrTimeLimit maps to
// RunResult.TimedOut, every other solver error propagates unchanged.
package tsp

import (
	"errors"
	"time"

	"github.com/katalvlaran/tourlab/geom"
)

// RunResult is the harness outcome for one solver invocation.
type RunResult struct {
	// Tour and Length are the solver output; both are zero-valued when the
	// run timed out.
	Tour   []int
	Length float64

	// Elapsed is the wall-clock duration actually consumed, reported for
	// successful and timed-out runs alike.
	Elapsed time.Duration

	// TimedOut is true when the solver aborted on its cooperative deadline
	// or completed after the limit had already passed.
	TimedOut bool
}

// Run invokes solver on inst, measures wall-clock duration, and suppresses
// the result if the duration exceeds limit. limit ≤ 0 means unlimited.
//
// Errors: ErrEmptyInstance before the clock starts; any non-deadline solver
// error is forwarded unchanged together with the elapsed time.
func Run(solver Solver, inst geom.Instance, limit time.Duration) (RunResult, error) {
	if err := validateInstance(inst); err != nil {
		return RunResult{}, err
	}

	opts := DefaultOptions()
	if limit > 0 {
		opts.TimeLimit = limit
	}

	var (
		started = time.Now()
		res     Result
		err     error
	)
	res, err = solver(inst, opts)
	elapsed := time.Since(started)

	if err != nil {
		if errors.Is(err, ErrTimeLimit) {
			// Cooperative abort: a normal, expected outcome, not an error.
			return RunResult{Elapsed: elapsed, TimedOut: true}, nil
		}
		return RunResult{Elapsed: elapsed}, err
	}

	if limit > 0 && elapsed > limit {
		// Advisory filter: the solver finished but too late; discard.
		return RunResult{Elapsed: elapsed, TimedOut: true}, nil
	}

	return RunResult{Tour: res.Tour, Length: res.Length, Elapsed: elapsed}, nil
}

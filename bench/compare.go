package bench

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/tourlab/geom"
	"github.com/katalvlaran/tourlab/tsp"
)

// ErrBadCoordinates is returned when a wire instance carries a coordinate
// row with fewer than two components.
var ErrBadCoordinates = errors.New("bench: coordinate row needs x and y")

// ErrNoAlgorithms is returned when a comparison selects nothing to run.
var ErrNoAlgorithms = errors.New("bench: no algorithms selected")

// Compare runs each selected algorithm through the execution harness with a
// shared time limit and collects the outcomes. Timed-out runs carry no tour,
// only the elapsed seconds. Solver errors abort the comparison and propagate
// unchanged.
//
// The instance is owned read-only; runs are strictly sequential (one solver
// at a time, matching the single-threaded execution model of the suite).
func Compare(name string, inst geom.Instance, algos []tsp.Algorithm, limit time.Duration) (Report, error) {
	if len(algos) == 0 {
		return Report{}, ErrNoAlgorithms
	}

	report := Report{
		Instance:         FromGeom(name, "", inst),
		System:           CaptureSysInfo(),
		TimeLimitSeconds: limit.Seconds(),
		Runs:             make([]SolverRun, 0, len(algos)),
	}

	var (
		algo   tsp.Algorithm
		solver tsp.Solver
		rr     tsp.RunResult
		err    error
	)
	for _, algo = range algos {
		if solver = tsp.SolverFor(algo); solver == nil {
			return Report{}, tsp.ErrUnknownAlgorithm
		}

		rr, err = tsp.Run(solver, inst, limit)
		if err != nil {
			return Report{}, err
		}

		run := SolverRun{
			Algorithm: algo.String(),
			Seconds:   rr.Elapsed.Seconds(),
			TimedOut:  rr.TimedOut,
		}
		if !rr.TimedOut {
			run.Tour = rr.Tour
			run.Length = rr.Length
		}
		report.Runs = append(report.Runs, run)
	}

	return report, nil
}

// Format renders the report as the fixed-width textual summary printed by
// the CLI:
//
//	Brute Force    : Distance = 40.00      Time = 0.01       seconds
//	Christofides   : Exceeded time limit of 2 seconds
func (r Report) Format() string {
	var b strings.Builder

	b.WriteString("\nResults:\n")
	b.WriteString(strings.Repeat("-", 60))
	b.WriteByte('\n')

	var run SolverRun
	for _, run = range r.Runs {
		if run.TimedOut {
			fmt.Fprintf(&b, "%-15s: Exceeded time limit of %g seconds\n",
				run.Algorithm, r.TimeLimitSeconds)
			continue
		}
		fmt.Fprintf(&b, "%-15s: Distance = %-10.2f Time = %-10.2f seconds\n",
			run.Algorithm, run.Length, run.Seconds)
	}

	b.WriteString(strings.Repeat("-", 60))
	b.WriteByte('\n')

	return b.String()
}

// Tours extracts the completed runs as a name→tour map, the shape consumed
// by the visualization layer.
func (r Report) Tours() map[string][]int {
	out := make(map[string][]int, len(r.Runs))

	var run SolverRun
	for _, run = range r.Runs {
		if !run.TimedOut && len(run.Tour) > 0 {
			out[run.Algorithm] = run.Tour
		}
	}

	return out
}

// Package tsp - greedy solver (nearest-neighbor construction).
package tsp

import (
	"math"

	"github.com/katalvlaran/tourlab/geom"
)

// Greedy builds a tour by repeatedly extending the current path with the
// unvisited city nearest to its last vertex, starting from vertex 0.
//
// State per call: the growing prefix and a local visited set; nothing is
// shared or reused across calls. Ties break toward the lowest index (the
// ascending scan with a strict comparison keeps the first minimum), so the
// solver is fully deterministic: identical instances yield identical tours.
//
// The result carries no optimality guarantee; a locally optimal step can
// produce an arbitrarily suboptimal tour. That is the accepted trade-off.
//
// Errors: ErrEmptyInstance.
//
// Complexity: O(n²) time, O(n) space.
func Greedy(inst geom.Instance, opts Options) (Result, error) {
	if err := validateInstance(inst); err != nil {
		return Result{}, err
	}
	_ = opts // no time budget needed: the construction is quadratic

	var n = len(inst)
	if n <= 2 {
		return trivialResult(inst)
	}

	var (
		perm    = make([]int, 1, n)
		visited = make([]bool, n)
		last    int
		next    int
		bestD   float64
		d       float64
		v       int
	)
	perm[0] = 0
	visited[0] = true

	for len(perm) < n {
		last = perm[len(perm)-1]
		next = -1
		bestD = math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if d = geom.Distance(inst[last], inst[v]); d < bestD {
				bestD = d
				next = v
			}
		}
		visited[next] = true
		perm = append(perm, next)
	}

	tour := closeTour(perm)

	length, err := geom.TourLength(tour, inst)
	if err != nil {
		return Result{}, ErrBadTour
	}

	return Result{Tour: tour, Length: length}, nil
}

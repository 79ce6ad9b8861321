// Package tsp - exact solver (brute-force enumeration).
//
// Exact enumerates every Hamiltonian cycle over the instance and returns the
// shortest. Vertex 0 is fixed as the anchor, so only permutations of 1..n-1
// are generated; this removes rotational duplicates (reflections remain, a
// constant-factor overhead that does not affect correctness).
//
// Determinism:
//   - Permutations are generated in lexicographic order.
//   - Ties are broken by enumeration order: the first minimum wins, so
//     repeated runs produce byte-identical tours.
//
// Time budget:
//   - Enumeration is unbounded in n, so Exact performs sparse cooperative
//     deadline checks (every 4096 permutations) when opts.TimeLimit > 0 and
//     returns ErrTimeLimit on expiry. TimeLimit == 0 disables the checks.
//
// Complexity: O((n-1)! · n) time, O(n²) space (distance matrix).
package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/tourlab/geom"
)

// deadlineCheckMask throttles deadline polling to one wall-clock read per
// 4096 permutations, keeping overhead negligible in the hot loop.
const deadlineCheckMask = 4095

// Exact solves the instance by full enumeration and returns the tour of
// global-minimum length. For n ≤ 2 the unique trivial tour is returned
// without enumerating anything.
//
// Errors: ErrEmptyInstance, ErrBadTimeLimit, ErrTimeLimit.
func Exact(inst geom.Instance, opts Options) (Result, error) {
	if err := validateInstance(inst); err != nil {
		return Result{}, err
	}
	if opts.TimeLimit < 0 {
		return Result{}, ErrBadTimeLimit
	}

	var n = len(inst)
	if n <= 2 {
		return trivialResult(inst)
	}

	// Dense distances remove repeated sqrt calls from the inner loop.
	var w = geom.DistanceMatrix(inst)

	// Soft deadline setup (checked sparsely).
	var (
		useDeadline = opts.TimeLimit > 0
		deadline    time.Time
		steps       int
	)
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	// perm holds the current suffix permutation of 1..n-1.
	perm := make([]int, n-1)

	var i int
	for i = 0; i < n-1; i++ {
		perm[i] = i + 1
	}

	var (
		best     = make([]int, n-1) // best suffix found so far
		bestCost = math.Inf(1)
		cost     float64
		j        int
	)
	for {
		// Cost of the cycle 0 → perm[0] → … → perm[n-2] → 0.
		cost = w[0][perm[0]] + w[perm[n-2]][0]
		for j = 0; j+1 < n-1; j++ {
			cost += w[perm[j]][perm[j+1]]
		}
		// Strict less-than keeps the first minimum under enumeration order.
		if cost < bestCost {
			bestCost = cost
			copy(best, perm)
		}

		if !nextPermutation(perm) {
			break
		}

		steps++
		if useDeadline && (steps&deadlineCheckMask) == 0 && time.Now().After(deadline) {
			return Result{}, ErrTimeLimit
		}
	}

	// Assemble the closed tour [0, best…, 0].
	full := make([]int, n)
	full[0] = 0
	copy(full[1:], best)
	tour := closeTour(full)

	return Result{Tour: tour, Length: geom.Round(bestCost)}, nil
}

// nextPermutation advances p to its lexicographic successor in place.
// Returns false when p was the last permutation (descending order).
//
// Complexity: O(len(p)) worst case, O(1) amortized.
func nextPermutation(p []int) bool {
	var (
		n = len(p)
		i = n - 2
	)
	// Longest non-increasing suffix.
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// Rightmost successor of the pivot.
	var j = n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	// Reverse the suffix.
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// trivialResult returns the unique tour for n ≤ 2 with its length.
func trivialResult(inst geom.Instance) (Result, error) {
	var n = len(inst)
	tour := trivialTour(n)

	length, err := geom.TourLength(tour, inst)
	if err != nil {
		return Result{}, ErrBadTour
	}

	return Result{Tour: tour, Length: length}, nil
}

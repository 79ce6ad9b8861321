// Package tsp - tour utilities shared by the solvers.
//
// Compact, allocation-conscious helpers that operate purely on index
// sequences, without touching coordinates or distance matrices.
package tsp

// trivialTour returns the only tour that exists for n ≤ 2 cities, closed at 0:
// [0 0] for n==1, [0 1 0] for n==2.
//
// Complexity: O(n).
func trivialTour(n int) []int {
	tour := make([]int, n+1)

	var i int
	for i = 0; i < n; i++ {
		tour[i] = i
	}
	tour[n] = 0

	return tour
}

// closeTour builds a closed cycle from an open permutation prefix whose first
// element is 0: the result has length n+1 and ends with the anchor 0.
// The input is copied; the caller keeps ownership of perm.
//
// Complexity: O(n) time, O(n) space.
func closeTour(perm []int) []int {
	var n = len(perm)
	tour := make([]int, n+1)
	copy(tour, perm)
	tour[n] = perm[0]

	return tour
}

// shortcutCircuit converts an Eulerian vertex walk (with revisits) into a
// closed Hamiltonian tour by keeping only the first visit of each vertex.
// This is the standard Christofides shortcutting step: skipped direct edges
// are never longer than the detours they replace (triangle inequality), so
// the bound of the Eulerian walk carries over.
//
// Contracts:
//   - euler[0] == 0 (the walk starts at the anchor),
//   - every v ∈ euler lies in [0..n-1],
//   - euler visits all n vertices at least once.
//
// Returns ErrBadTour if the walk misses a vertex or steps out of range.
//
// Complexity: O(len(euler) + n) time, O(n) space.
func shortcutCircuit(euler []int, n int) ([]int, error) {
	if n <= 0 || len(euler) == 0 || euler[0] != 0 {
		return nil, ErrBadTour
	}

	var (
		visited = make([]bool, n)
		perm    = make([]int, 0, n)
		i       int
		v       int
	)
	for i = 0; i < len(euler); i++ {
		v = euler[i]
		if v < 0 || v >= n {
			return nil, ErrBadTour
		}
		if !visited[v] {
			visited[v] = true
			perm = append(perm, v)
		}
	}
	if len(perm) != n {
		// The multigraph was not connected; with MST edges present this
		// cannot happen and indicates a wiring defect upstream.
		return nil, ErrBadTour
	}

	return closeTour(perm), nil
}

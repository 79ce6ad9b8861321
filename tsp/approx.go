// Package tsp - Christofides 1.5-approximation.
//
// Approx computes an approximate Hamiltonian cycle through the pipeline:
//
//  1. Complete weighted graph (dense Euclidean distance matrix).
//  2. Minimum spanning tree (dense Prim).
//  3. Odd-degree vertex collection; the handshake lemma guarantees an even
//     count — an odd count aborts with ErrOddParity instead of being patched.
//  4. Minimum-weight perfect matching on the odd set (exact DP, greedy
//     fallback for very large odd sets; see matching.go).
//  5. Eulerian multigraph = MST edges ∪ matching edges.
//  6. Eulerian circuit (Hierholzer).
//  7. Shortcut: keep the first visit of each vertex, close at the anchor.
//
// Guarantee: tour length ≤ 1.5 × optimum whenever weights satisfy the
// triangle inequality (always true here — Euclidean) and the matching is
// exact. Every stage is deterministic, so repeated solves of the same
// instance return the identical tour.
package tsp

import "github.com/katalvlaran/tourlab/geom"

// Approx runs the Christofides pipeline on the instance. For n ≤ 2 the
// pipeline is degenerate and the trivial tour is returned directly.
//
// Errors: ErrEmptyInstance, ErrOddParity (internal invariant), ErrBadTour
// (internal wiring defects surfaced by the shortcut stage).
//
// Complexity: O(n²) time outside the matching, O(n²) space.
func Approx(inst geom.Instance, opts Options) (Result, error) {
	if err := validateInstance(inst); err != nil {
		return Result{}, err
	}
	_ = opts // polynomial pipeline; completes without deadline checks

	var n = len(inst)
	if n <= 2 {
		return trivialResult(inst)
	}

	// 1) Complete weighted graph.
	var dist = geom.DistanceMatrix(inst)

	// 2) Minimum spanning tree as multigraph adjacency.
	var adj = minimumSpanningTree(dist)

	// 3) Odd-degree vertices. degree(v) is odd iff the LSB of len(adj[v]) is set.
	odd := make([]int, 0, n/2+1)

	var v int
	for v = 0; v < n; v++ {
		if len(adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}
	if len(odd)&1 == 1 {
		return Result{}, ErrOddParity
	}

	// 4)+5) Matching edges merge into adj, forming the Eulerian multigraph.
	// An empty odd set is a no-op: the tree is already Eulerian.
	matchOdd(odd, dist, adj)

	// 6) Eulerian circuit from the anchor.
	euler := eulerianCircuit(adj, 0)

	// 7) Shortcut revisits into a Hamiltonian cycle.
	tour, err := shortcutCircuit(euler, n)
	if err != nil {
		return Result{}, err
	}

	length, err := geom.TourLength(tour, inst)
	if err != nil {
		return Result{}, ErrBadTour
	}

	// Cheap final invariant check; catches wiring mistakes early.
	if err = ValidateTour(tour, n); err != nil {
		return Result{}, err
	}

	return Result{Tour: tour, Length: length}, nil
}

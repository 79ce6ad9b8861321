// Package tsp provides three Travelling Salesman tour-construction strategies
// over planar instances (geom.Instance), plus the execution harness that times
// them and enforces a wall-clock budget.
//
// Solvers (all deterministic, all anchored at vertex 0):
//
//   - Exact — brute-force enumeration of all (n-1)! permutations.
//
//   - Complexity: O((n-1)!) time, O(n) space.
//
//   - Practical only for n ≲ 11; supports cooperative deadline aborts.
//
//   - Greedy — nearest-neighbor construction.
//
//   - Complexity: O(n²) time.
//
//   - No optimality guarantee; a locally optimal step can be globally poor.
//
//   - Approx — Christofides pipeline (MST → odd-vertex matching → Eulerian
//     circuit → shortcut).
//
//   - Complexity: O(n²) + matching (exact DP for small odd sets).
//
//   - Length ≤ 1.5×OPT under the triangle inequality when the matching is
//     exact (always true for Euclidean instances in that regime).
//
// The harness (Run) invokes a solver, measures wall-clock duration, and
// discards results that exceed a caller-supplied limit. The limit is also
// plumbed into the solver as a cooperative deadline, so brute-force search on
// large n aborts early with ErrTimeLimit instead of running unbounded.
//
// Every tour returned by this package is a closed cycle: for n cities,
// len(Tour) == n+1 with Tour[0] == Tour[n] == 0, and the n-element prefix is
// a permutation of 0..n-1.
package tsp

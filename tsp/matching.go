// Package tsp - minimum-weight perfect matching on the odd-degree vertices.
//
// Two implementations with a deterministic preferred/fallback split:
//
//   - matchExact — optimal pairing by bitmask dynamic programming, used for
//     odd sets of up to matchExactMaxOdd vertices. This is what makes the
//     Christofides 1.5×OPT bound hold.
//
//   - matchGreedy — nearest-available pairing, used beyond the DP threshold.
//     The pipeline stays valid (every vertex still ends up with even degree)
//     but the formal approximation factor is no longer guaranteed.
package tsp

import (
	"math"
	"math/bits"
)

// matchExactMaxOdd caps the bitmask DP: 2^16 subsets ≈ 65k float64 slots,
// well under a megabyte, while instances whose odd set exceeds 16 vertices
// are already far beyond exact cross-checking anyway.
const matchExactMaxOdd = 16

// matchOdd adds a minimum-weight perfect matching over the vertices in odd
// to the multigraph adjacency adj, routing to the exact DP when the set is
// small enough and to the greedy pairing otherwise.
//
// Contract: len(odd) is even (enforced by the caller via ErrOddParity);
// an empty set is a no-op.
//
// Complexity: O(k²·2^k) for the exact path, O(k²) greedy.
func matchOdd(odd []int, dist [][]float64, adj [][]int) {
	if len(odd) == 0 {
		return
	}
	if len(odd) <= matchExactMaxOdd {
		matchExact(odd, dist, adj)
		return
	}
	matchGreedy(odd, dist, adj)
}

// matchExact computes the optimal perfect matching over odd by dynamic
// programming on vertex subsets.
//
// dp[mask] is the minimum matching weight over the vertices selected by
// mask. Transitions always pair the lowest set bit with another member, so
// each matching is counted exactly once. Ties resolve toward the lowest
// partner index (strict comparison in an ascending scan), keeping the edge
// set deterministic.
//
// Complexity: O(k²·2^k) time, O(2^k) space, k = len(odd).
func matchExact(odd []int, dist [][]float64, adj [][]int) {
	var (
		k    = len(odd)
		full = (1 << k) - 1
	)

	dp := make([]float64, full+1)
	choice := make([]int, full+1) // partner bit chosen for the lowest bit

	var mask int
	for mask = 1; mask <= full; mask++ {
		dp[mask] = math.Inf(1)
		choice[mask] = -1
	}

	var (
		lo   int // index of the lowest set bit in mask
		j    int
		rest int
		cand float64
	)
	for mask = 1; mask <= full; mask++ {
		// Skip subsets of odd cardinality; they admit no perfect matching.
		if bits.OnesCount(uint(mask))&1 == 1 {
			continue
		}
		lo = bits.TrailingZeros(uint(mask))
		for j = lo + 1; j < k; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			rest = mask &^ (1 << lo) &^ (1 << j)
			if cand = dp[rest] + dist[odd[lo]][odd[j]]; cand < dp[mask] {
				dp[mask] = cand
				choice[mask] = j
			}
		}
	}

	// Reconstruct the pairs and splice them into the multigraph.
	var (
		u int
		v int
	)
	mask = full
	for mask != 0 {
		lo = bits.TrailingZeros(uint(mask))
		j = choice[mask]
		u, v = odd[lo], odd[j]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		mask = mask &^ (1 << lo) &^ (1 << j)
	}
}

// matchGreedy pairs each remaining vertex with its nearest available partner.
// Deterministic (ascending scan, strict comparison) but not optimal.
//
// Complexity: O(k²) time, O(k) space.
func matchGreedy(odd []int, dist [][]float64, adj [][]int) {
	remaining := append([]int(nil), odd...)

	var (
		u       int
		v       int
		bestIdx int
		bestD   float64
		i       int
	)
	for len(remaining) > 1 {
		u = remaining[0]
		remaining = remaining[1:]
		bestIdx, bestD = -1, math.Inf(1)
		for i = 0; i < len(remaining); i++ {
			v = remaining[i]
			if d := dist[u][v]; d < bestD {
				bestD, bestIdx = d, i
			}
		}
		v = remaining[bestIdx]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
}

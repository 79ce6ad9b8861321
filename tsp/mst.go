package tsp

import "math"

// minimumSpanningTree computes a minimum spanning tree of the complete graph
// described by the dense n×n distance matrix dist, using Prim's algorithm in
// its O(n²) dense form (optimal for complete graphs, where E = n(n-1)/2).
//
// The tree is returned as adjacency lists: adj[v] holds the neighbors of v.
// Tie-breaking among equal-weight candidate edges is deterministic — the
// ascending vertex scan with strict comparisons always picks the lowest
// index — so repeated runs build the identical tree.
//
// Contract: dist is square, symmetric, finite, with zero diagonal; it is
// built internally by the approximation pipeline, never user-supplied.
//
// Complexity: O(n²) time, O(n) extra space.
func minimumSpanningTree(dist [][]float64) [][]int {
	var n = len(dist)
	adj := make([][]int, n)
	if n == 0 {
		return adj
	}

	var (
		inTree   = make([]bool, n)
		bestCost = make([]float64, n) // cheapest connection to the tree
		parent   = make([]int, n)
		v        int
	)
	for v = 0; v < n; v++ {
		bestCost[v] = math.Inf(1)
		parent[v] = -1
	}
	bestCost[0] = 0

	var (
		it   int
		u    int
		minW float64
		p    int
	)
	// Grow the tree one vertex at a time.
	for it = 0; it < n; it++ {
		// (a) cheapest vertex not yet in the tree.
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		// Complete finite graph: a candidate always exists.
		inTree[u] = true
		// (b) record the edge to its parent.
		if p = parent[u]; p >= 0 {
			adj[u] = append(adj[u], p)
			adj[p] = append(adj[p], u)
		}
		// (c) relax connections through u.
		for v = 0; v < n; v++ {
			if !inTree[v] && dist[u][v] < bestCost[v] {
				bestCost[v] = dist[u][v]
				parent[v] = u
			}
		}
	}

	return adj
}

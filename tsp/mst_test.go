// Package tsp_test verifies dense Prim over complete metric matrices via the
// test hooks: tree shape, total weight, and deterministic tie-breaking.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourlab/geom"
	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/require"
)

// degFromAdj returns the degree vector of a graph encoded by adjacency lists.
func degFromAdj(adj [][]int) []int {
	deg := make([]int, len(adj))
	var u int
	for u = 0; u < len(adj); u++ {
		deg[u] = len(adj[u])
	}
	return deg
}

// treeWeight sums the weight of every undirected edge in adj exactly once.
func treeWeight(adj [][]int, dist [][]float64) float64 {
	var (
		sum float64
		u   int
		i   int
	)
	for u = 0; u < len(adj); u++ {
		for i = 0; i < len(adj[u]); i++ {
			if v := adj[u][i]; u < v {
				sum += dist[u][v]
			}
		}
	}
	return sum
}

// edgeCount counts undirected edges (each edge contributes two adjacency
// entries).
func edgeCount(adj [][]int) int {
	var total int
	var u int
	for u = 0; u < len(adj); u++ {
		total += len(adj[u])
	}
	return total / 2
}

func TestMST_PathInstance(t *testing.T) {
	// Four collinear cities: the unique MST is the path 0-1-2-3 of weight 3.
	inst := geom.Instance{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	dist := geom.DistanceMatrix(inst)

	adj := tsp.TestHookMST(dist)
	require.Equal(t, 3, edgeCount(adj), "a spanning tree on 4 vertices has 3 edges")
	require.Equal(t, 3.0, treeWeight(adj, dist))
	require.Equal(t, []int{1, 2, 2, 1}, degFromAdj(adj), "path endpoints have degree 1")
}

func TestMST_SquareInstance(t *testing.T) {
	// Square corners: any MST picks three sides (weight 30), never a diagonal.
	inst := unitSquare10()
	dist := geom.DistanceMatrix(inst)

	adj := tsp.TestHookMST(dist)
	require.Equal(t, 3, edgeCount(adj))
	require.Equal(t, 30.0, treeWeight(adj, dist))
}

func TestMST_Deterministic(t *testing.T) {
	dist := geom.DistanceMatrix(geom.Random(25, 1000, 9))

	a := tsp.TestHookMST(dist)
	b := tsp.TestHookMST(dist)
	require.Equal(t, a, b, "identical input must rebuild the identical tree")
}

func TestMST_SpansRandomInstances(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 4; seed++ {
		n := 20
		dist := geom.DistanceMatrix(geom.Random(n, 300, seed))
		adj := tsp.TestHookMST(dist)

		require.Equal(t, n-1, edgeCount(adj), "n-1 edges, no cycle")
		// Every vertex is connected.
		for _, d := range degFromAdj(adj) {
			require.Positive(t, d)
		}
	}
}

package geom

import (
	"errors"
	"math"
)

// ErrVertexOutOfRange is returned when a tour references an index outside
// the instance's vertex universe [0..n-1].
var ErrVertexOutOfRange = errors.New("geom: tour index out of range")

// ErrEmptyTour is returned when a tour-length evaluation receives no vertices.
var ErrEmptyTour = errors.New("geom: empty tour")

// roundScale controls cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// Point is an immutable 2-D coordinate pair.
type Point struct {
	X float64
	Y float64
}

// Instance is an ordered sequence of cities. Indices 0..n-1 identify the
// cities; the slice itself is treated as read-only by every consumer.
type Instance []Point

// Distance returns the Euclidean distance between two points.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	var (
		dx = a.X - b.X
		dy = a.Y - b.Y
	)
	return math.Sqrt(dx*dx + dy*dy)
}

// TourLength sums the cyclic edge distances of tour over inst:
//
//	Σ Distance(inst[tour[i]], inst[tour[(i+1) mod k]]), k = len(tour).
//
// The tour may be an open permutation (length n) or a closed cycle
// (length n+1 with tour[0]==tour[k-1]); the cyclic sum is identical either
// way because the closing edge of an already-closed tour has zero length.
// A single-city tour has length 0.
//
// Returns ErrEmptyTour for len(tour)==0 and ErrVertexOutOfRange for any
// index outside [0..len(inst)-1]. The result is rounded to 1e-9.
//
// Complexity: O(k) time, O(1) space.
func TourLength(tour []int, inst Instance) (float64, error) {
	var k = len(tour)
	if k == 0 {
		return 0, ErrEmptyTour
	}

	var (
		n   = len(inst)
		sum float64
		i   int
		u   int
		v   int
	)
	for i = 0; i < k; i++ {
		u = tour[i]
		v = tour[(i+1)%k]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrVertexOutOfRange
		}
		sum += Distance(inst[u], inst[v])
	}

	return Round(sum), nil
}

// DistanceMatrix builds the dense symmetric n×n matrix of pairwise Euclidean
// distances over inst (zero diagonal). The matrix is derived data: rebuilt
// per call, owned by the caller, never shared or mutated afterwards.
//
// Complexity: O(n²) time and space.
func DistanceMatrix(inst Instance) [][]float64 {
	var n = len(inst)
	dist := make([][]float64, n)

	var (
		i int
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}
	// Fill the upper triangle once and mirror it; the diagonal stays zero.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(inst[i], inst[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist
}

// Round returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func Round(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

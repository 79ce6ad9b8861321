package geom

import "math/rand"

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Random generates an instance of n cities drawn uniformly from the square
// [0,maxCoord]². Identical (n, maxCoord, seed) triples produce identical
// instances on every platform; no time-based randomness is involved.
//
// Contracts:
//   - n ≥ 0 (n==0 yields an empty instance; solvers reject it downstream).
//   - maxCoord ≥ 0.
//
// Complexity: O(n) time, O(n) space.
func Random(n int, maxCoord float64, seed int64) Instance {
	if n <= 0 {
		return Instance{}
	}

	var (
		rng  = rngFromSeed(seed)
		inst = make(Instance, n)
		i    int
	)
	for i = 0; i < n; i++ {
		inst[i] = Point{
			X: rng.Float64() * maxCoord,
			Y: rng.Float64() * maxCoord,
		}
	}

	return inst
}

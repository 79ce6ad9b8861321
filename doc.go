// Package tourlab is a compact toolkit for computing and comparing
// Travelling Salesman tours over planar instances.
//
// 🚀 What is tourlab?
//
//	A small, deterministic solver-comparison suite that brings together:
//		• Geometry: planar instances, Euclidean distances, tour evaluation
//		• Exact search: brute-force enumeration with cooperative deadlines
//		• Heuristics: nearest-neighbor construction
//		• Approximation: Christofides (MST + matching + Eulerian shortcut)
//		• Harness: per-solver wall-clock measurement and time-limit filtering
//		• Reporting: JSON instances/reports with system metadata, SVG plots
//
// ✨ Why choose tourlab?
//
//   - Deterministic – fixed seeds, lowest-index tie-breaks, byte-stable costs
//   - Honest errors – strict sentinel errors, invariants never swallowed
//   - Pure Go core – the solver suite itself carries no dependencies
//
// Everything is organized under five packages:
//
//	geom/        — Point, Instance, distances, the random-instance generator
//	tsp/         — the three solvers, the dispatcher and the execution harness
//	bench/       — comparison runs, JSON wire forms, system metadata
//	render/      — SVG visualization of computed tours
//	cmd/tourlab/ — the command-line front end
//
// Quick start:
//
//	inst := geom.Random(9, 1000, 42)
//	res, err := tsp.Solve(inst, tsp.Options{Algo: tsp.Christofides})
//	if err != nil {
//		// ...
//	}
//	fmt.Println(res.Tour, res.Length)
package tourlab

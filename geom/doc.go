// Package geom provides the planar-geometry substrate for the tourlab solvers:
// the city/instance model, Euclidean distances, tour-length evaluation, and a
// deterministic random-instance generator.
//
// Model:
//   - A city is a Point (immutable X,Y pair). It carries no identity of its
//     own; a city is identified by its index within an Instance.
//   - An Instance is an ordered sequence of Points. Indices 0..n-1 form the
//     vertex universe shared by every solver.
//   - A tour is a closed index cycle: length n+1, tour[0]==tour[n].
//
// Design principles:
//   - Pure functions, no hidden state; instances are never mutated.
//   - Deterministic: the generator derives everything from an explicit seed
//     (seed==0 maps to a fixed default stream).
//   - Stable costs: tour lengths are rounded to 1e-9 absolute precision so
//     results are byte-identical across platforms and optimization levels.
//
// Euclidean distance satisfies the triangle inequality, which is what makes
// the Christofides 1.5-approximation bound in package tsp applicable.
package geom

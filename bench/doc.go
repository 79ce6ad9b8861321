// Package bench runs solver comparisons and serializes their results.
//
// It is the orchestration layer around package tsp: it selects solvers, runs
// each one through the execution harness with a shared time limit, and
// collects the outcomes into a Report — together with the instance itself and
// a snapshot of the executing system (platform, CPU model, RAM), so result
// files remain interpretable when they travel between machines.
//
// Instances and reports are plain JSON documents; see Instance and Report for
// the wire shape. The core solvers know nothing about this package.
package bench

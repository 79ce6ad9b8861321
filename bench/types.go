package bench

import "github.com/katalvlaran/tourlab/geom"

// Instance is the JSON wire form of a city set.
type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment,omitempty"`

	NodeCount       int         `json:"node_count"`
	NodeCoordinates [][]float64 `json:"node_coordinates"`
}

// SysInfo describes the machine a report was produced on.
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

// SolverRun is the outcome of one solver under the shared time limit.
// Tour and Length are absent when the run timed out.
type SolverRun struct {
	Algorithm string  `json:"algorithm"`
	Tour      []int   `json:"tour,omitempty"`
	Length    float64 `json:"length,omitempty"`
	Seconds   float64 `json:"seconds"`
	TimedOut  bool    `json:"timed_out,omitempty"`
}

// Report bundles a comparison: the instance, the system it ran on, the
// shared limit, and one SolverRun per selected algorithm.
type Report struct {
	Instance         Instance    `json:"instance"`
	System           SysInfo     `json:"system"`
	TimeLimitSeconds float64     `json:"time_limit_seconds"`
	Runs             []SolverRun `json:"runs"`
}

// FromGeom wraps a geometric instance into its wire form.
func FromGeom(name, comment string, inst geom.Instance) Instance {
	coords := make([][]float64, len(inst))

	var i int
	for i = 0; i < len(inst); i++ {
		coords[i] = []float64{inst[i].X, inst[i].Y}
	}

	return Instance{
		Name:            name,
		Comment:         comment,
		NodeCount:       len(inst),
		NodeCoordinates: coords,
	}
}

// ToGeom converts the wire form back into a solver-ready instance.
// Rows shorter than two coordinates are rejected via ErrBadCoordinates.
func (in Instance) ToGeom() (geom.Instance, error) {
	inst := make(geom.Instance, len(in.NodeCoordinates))

	var i int
	for i = 0; i < len(in.NodeCoordinates); i++ {
		if len(in.NodeCoordinates[i]) < 2 {
			return nil, ErrBadCoordinates
		}
		inst[i] = geom.Point{
			X: in.NodeCoordinates[i][0],
			Y: in.NodeCoordinates[i][1],
		}
	}

	return inst, nil
}

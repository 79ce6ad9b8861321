// Package render draws instances and their computed tours as SVG documents.
//
// It is a pure consumer of the solver suite's output: it accepts an instance
// plus a {solverName: tour} map and knows nothing about how the tours were
// produced. Tours may be open permutations or closed cycles; the drawn
// polyline is always closed.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/katalvlaran/tourlab/geom"
)

// ErrEmptyInstance is returned when there is nothing to draw.
var ErrEmptyInstance = errors.New("render: empty instance")

// ErrBadTour is returned when a tour references a vertex outside the instance.
var ErrBadTour = errors.New("render: tour index out of range")

// Canvas geometry: fixed view box with a margin for index labels.
const (
	canvasW = 800.0
	canvasH = 640.0
	margin  = 40.0
)

// palette cycles across tours in sorted-name order, keeping colors stable
// between runs.
var palette = []string{"#1f77b4", "#2ca02c", "#9467bd", "#ff7f0e", "#8c564b"}

// WriteSVG renders the cities of inst as labelled dots and each named tour
// as a closed polyline in its own <g> element. Tour groups are emitted in
// sorted name order so the output is byte-stable.
func WriteSVG(w io.Writer, inst geom.Instance, tours map[string][]int) error {
	var n = len(inst)
	if n == 0 {
		return ErrEmptyInstance
	}

	// Bounding box of the instance.
	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
		i          int
	)
	for i = 0; i < n; i++ {
		minX = math.Min(minX, inst[i].X)
		maxX = math.Max(maxX, inst[i].X)
		minY = math.Min(minY, inst[i].Y)
		maxY = math.Max(maxY, inst[i].Y)
	}
	// Degenerate spans (single city, collinear points) still need a scale.
	var (
		spanX = math.Max(maxX-minX, 1)
		spanY = math.Max(maxY-minY, 1)
		scale = math.Min((canvasW-2*margin)/spanX, (canvasH-2*margin)/spanY)
	)
	// Map instance coordinates into the view box; SVG y grows downward.
	px := func(p geom.Point) (float64, float64) {
		return margin + (p.X-minX)*scale, canvasH - margin - (p.Y-minY)*scale
	}

	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		canvasW, canvasH, canvasW, canvasH); err != nil {
		return err
	}

	// Tours first so city dots stay visible on top.
	names := make([]string, 0, len(tours))
	for name := range tours {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		name string
		ci   int
	)
	for ci, name = range names {
		if err := writeTour(w, inst, tours[name], name, palette[ci%len(palette)], px); err != nil {
			return err
		}
	}

	// City markers with index labels.
	var x, y float64
	for i = 0; i < n; i++ {
		x, y = px(inst[i])
		if _, err := fmt.Fprintf(w,
			`  <circle cx="%.2f" cy="%.2f" r="4" fill="#d62728"/>`+"\n"+
				`  <text x="%.2f" y="%.2f" font-size="12">%d</text>`+"\n",
			x, y, x+6, y-6, i); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</svg>\n")
	return err
}

// writeTour emits one closed polyline group.
func writeTour(w io.Writer, inst geom.Instance, tour []int, name, color string,
	px func(geom.Point) (float64, float64)) error {
	if len(tour) == 0 {
		return ErrBadTour
	}

	if _, err := fmt.Fprintf(w, `  <g id=%q fill="none" stroke=%q stroke-width="1.5">`+"\n", name, color); err != nil {
		return err
	}

	if _, err := io.WriteString(w, `    <polyline points="`); err != nil {
		return err
	}

	var (
		i    int
		v    int
		x, y float64
	)
	// Close the loop by revisiting the first vertex.
	for i = 0; i <= len(tour); i++ {
		v = tour[i%len(tour)]
		if v < 0 || v >= len(inst) {
			return ErrBadTour
		}
		x, y = px(inst[v])
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%.2f,%.2f", x, y); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `"/>`+"\n  </g>\n")
	return err
}

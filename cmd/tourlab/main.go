// Command tourlab compares TSP solvers on a planar instance and prints a
// timing/length summary. Instances come either from the deterministic random
// generator or from a JSON file; results can be written as a JSON report and
// an SVG tour plot.
//
// Usage:
//
//	tourlab -n 9                          # random 9-city instance, all solvers
//	tourlab -n 14 -algos nn,christofides  # skip brute force on larger n
//	tourlab -input cities.json -limit 2m -output report.json -svg tours.svg
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/tourlab/bench"
	"github.com/katalvlaran/tourlab/geom"
	"github.com/katalvlaran/tourlab/render"
	"github.com/katalvlaran/tourlab/tsp"
)

var (
	nCities  = flag.Int("n", 8, "Number of random cities to generate (ignored with -input)")
	maxCoord = flag.Float64("max-coord", 1000, "Side length of the square the random cities are drawn from")
	seed     = flag.Int64("seed", 0, "Generator seed; 0 selects the fixed default stream")
	algoList = flag.String("algos", "brute,nn,christofides", "Comma-separated solver selection: brute, nn, christofides")
	limit    = flag.Duration("limit", 30*time.Minute, "Per-solver time limit (0 = unlimited)")
	inputF   = flag.String("input", "", "Path to a JSON instance; overrides the random generator")
	outputF  = flag.String("output", "", "Path for the JSON report (optional)")
	svgF     = flag.String("svg", "", "Path for an SVG plot of the computed tours (optional)")
	logLvl   = flag.Int("log", 2, "Log verbosity: 1 errors, 2 info, 3 debug")
)

func main() {
	flag.Parse()
	initLoggers(*logLvl)

	algos, err := parseAlgos(*algoList)
	if err != nil {
		logf(1, "%v", err)
		os.Exit(2)
	}

	name, inst, err := loadInstance()
	if err != nil {
		logf(1, "%v", err)
		os.Exit(1)
	}
	logf(2, "instance %q: %d cities, limit %s, solvers %s", name, len(inst), limit, *algoList)

	report, err := bench.Compare(name, inst, algos, *limit)
	if err != nil {
		logf(1, "comparison failed: %v", err)
		os.Exit(1)
	}

	fmt.Print(report.Format())

	if *outputF != "" {
		if err = bench.WriteReport(*outputF, report); err != nil {
			logf(1, "writing report: %v", err)
			os.Exit(1)
		}
		logf(2, "report written to %s", *outputF)
	}

	if *svgF != "" {
		if err = writeSVGFile(*svgF, inst, report.Tours()); err != nil {
			logf(1, "writing svg: %v", err)
			os.Exit(1)
		}
		logf(2, "plot written to %s", *svgF)
	}
}

// parseAlgos maps the comma-separated selection onto Algorithm values.
// Malformed selections are rejected here; the core never sees them.
func parseAlgos(list string) ([]tsp.Algorithm, error) {
	var out []tsp.Algorithm

	for _, tok := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "":
			continue
		case "brute", "bruteforce":
			out = append(out, tsp.BruteForce)
		case "nn", "greedy", "nearest":
			out = append(out, tsp.NearestNeighbor)
		case "christofides", "approx":
			out = append(out, tsp.Christofides)
		default:
			return nil, fmt.Errorf("unknown solver %q (want brute, nn or christofides)", tok)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no solvers selected")
	}

	return out, nil
}

// loadInstance reads the JSON instance when -input is given, otherwise
// generates a deterministic random one.
func loadInstance() (string, geom.Instance, error) {
	if *inputF != "" {
		wire, err := bench.ReadInstance(*inputF)
		if err != nil {
			return "", nil, fmt.Errorf("reading %s: %w", *inputF, err)
		}
		inst, err := wire.ToGeom()
		if err != nil {
			return "", nil, fmt.Errorf("decoding %s: %w", *inputF, err)
		}
		if len(inst) == 0 {
			return "", nil, fmt.Errorf("%s: instance has no cities", *inputF)
		}
		return wire.Name, inst, nil
	}

	if *nCities < 1 {
		return "", nil, fmt.Errorf("-n must be at least 1, got %d", *nCities)
	}
	name := fmt.Sprintf("random-%d", *nCities)

	return name, geom.Random(*nCities, *maxCoord, *seed), nil
}

// writeSVGFile renders the tours into an SVG file.
func writeSVGFile(path string, inst geom.Instance, tours map[string][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return render.WriteSVG(f, inst, tours)
}

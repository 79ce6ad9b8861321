// Package bench_test verifies comparison runs, the JSON wire forms, and the
// textual report formatting.
package bench_test

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tourlab/bench"
	"github.com/katalvlaran/tourlab/geom"
	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/require"
)

func square() geom.Instance {
	return geom.Instance{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
		{X: 10, Y: 0},
	}
}

func allAlgos() []tsp.Algorithm {
	return []tsp.Algorithm{tsp.BruteForce, tsp.NearestNeighbor, tsp.Christofides}
}

func TestCompare_AllSolversOnSquare(t *testing.T) {
	report, err := bench.Compare("square", square(), allAlgos(), time.Minute)
	require.NoError(t, err)
	require.Len(t, report.Runs, 3)
	require.Equal(t, 4, report.Instance.NodeCount)

	var run bench.SolverRun
	for _, run = range report.Runs {
		require.False(t, run.TimedOut, run.Algorithm)
		require.Equal(t, 40.0, run.Length, run.Algorithm)
		require.NoError(t, tsp.ValidateTour(run.Tour, 4), run.Algorithm)
		require.GreaterOrEqual(t, run.Seconds, 0.0)
	}
}

func TestCompare_TimedOutRunCarriesNoTour(t *testing.T) {
	// Brute force on 12 cities cannot beat a nanosecond budget.
	inst := geom.Random(12, 1000, 3)

	report, err := bench.Compare("big", inst, []tsp.Algorithm{tsp.BruteForce}, time.Nanosecond)
	require.NoError(t, err)
	require.Len(t, report.Runs, 1)
	require.True(t, report.Runs[0].TimedOut)
	require.Empty(t, report.Runs[0].Tour)
	require.Zero(t, report.Runs[0].Length)
}

func TestCompare_EmptySelection(t *testing.T) {
	_, err := bench.Compare("none", square(), nil, time.Second)
	require.ErrorIs(t, err, bench.ErrNoAlgorithms)
}

func TestInstance_GeomRoundTrip(t *testing.T) {
	orig := geom.Random(12, 500, 5)

	wire := bench.FromGeom("roundtrip", "test", orig)
	require.Equal(t, 12, wire.NodeCount)

	back, err := wire.ToGeom()
	require.NoError(t, err)
	require.Equal(t, orig, back)
}

func TestInstance_BadCoordinates(t *testing.T) {
	wire := bench.Instance{NodeCoordinates: [][]float64{{1, 2}, {3}}}

	_, err := wire.ToGeom()
	require.ErrorIs(t, err, bench.ErrBadCoordinates)
}

func TestReport_JSONRoundTrip(t *testing.T) {
	report, err := bench.Compare("square", square(), allAlgos(), time.Minute)
	require.NoError(t, err)

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	var back bench.Report
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, report, back)
}

func TestReadWriteInstance_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inst.json")
	wire := bench.FromGeom("disk", "", geom.Random(7, 100, 9))

	require.NoError(t, bench.WriteInstance(path, wire))

	back, err := bench.ReadInstance(path)
	require.NoError(t, err)
	require.Equal(t, wire, back)
}

func TestReport_Format(t *testing.T) {
	report := bench.Report{
		TimeLimitSeconds: 2,
		Runs: []bench.SolverRun{
			{Algorithm: "Brute Force", Length: 40, Seconds: 0.01},
			{Algorithm: "Christofides", TimedOut: true, Seconds: 2.5},
		},
	}

	text := report.Format()
	require.Contains(t, text, "Brute Force    : Distance = 40.00")
	require.Contains(t, text, "Christofides   : Exceeded time limit of 2 seconds")
}

func TestReport_Tours(t *testing.T) {
	report := bench.Report{
		Runs: []bench.SolverRun{
			{Algorithm: "Brute Force", Tour: []int{0, 1, 0}},
			{Algorithm: "Christofides", TimedOut: true},
		},
	}

	tours := report.Tours()
	require.Len(t, tours, 1)
	require.Equal(t, []int{0, 1, 0}, tours["Brute Force"])
}

func TestCaptureSysInfo_DoesNotPanic(t *testing.T) {
	// Values are machine-dependent; only the call contract is asserted.
	_ = bench.CaptureSysInfo()
}

package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jheitmann/robust-journey-planner/planner"
	"github.com/jheitmann/robust-journey-planner/scan"
	"github.com/jheitmann/robust-journey-planner/timetable"
)

func baseTime() time.Time { return time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC) }

func minAfter(base time.Time, m int) time.Time { return base.Add(time.Duration(m) * time.Minute) }

func mustWalk(t *testing.T, n int, entries ...[3]int) *timetable.WalkMatrix {
	t.Helper()
	raw := make([]struct{ From, To, Minutes int }, len(entries))
	for i, e := range entries {
		raw[i] = struct{ From, To, Minutes int }{e[0], e[1], e[2]}
	}
	wm, err := timetable.NewWalkMatrix(n, raw)
	require.NoError(t, err)
	return wm
}

func mustStore(t *testing.T, conns []timetable.Connection, walk *timetable.WalkMatrix, names []string) *timetable.Store {
	t.Helper()
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}
	store, err := timetable.NewStore(conns, walk, idx, names)
	require.NoError(t, err)
	return store
}

func TestPlan_UnknownStationRejectedAtFacade(t *testing.T) {
	store := mustStore(t, nil, mustWalk(t, 2), []string{"A", "B"})
	p := planner.New(store)

	_, err := p.Plan("A", "Nowhere", baseTime(), 1)
	require.ErrorIs(t, err, timetable.ErrUnknownStation)
}

func TestPlan_TrivialWalk(t *testing.T) {
	t0 := baseTime()
	store := mustStore(t, nil, mustWalk(t, 2, [3]int{0, 1, 5}), []string{"A", "B"})
	p := planner.New(store)

	segs, err := p.Plan("A", "B", t0, 1)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	require.Equal(t, timetable.WalkType, segs[0].Type)
}

// TestTimesFrom_OriginIsZeroAndUnreachableIsHorizon covers §4.6 TimesFrom:
// the origin reports 0, and a station cut off by tolerance reports the
// Δ·60 sentinel (§8 scenario 6's precondition).
func TestTimesFrom_OriginIsZeroAndUnreachableIsHorizon(t *testing.T) {
	t0 := baseTime()
	// Boarding T1 at C with zero buffer after T0 costs T0's CDF[0] = 0.2,
	// which is below the 0.9 tolerance, so B is never reached.
	conns := []timetable.Connection{
		{TripID: "T0", Type: "Bus", DepartureStation: 0, ArrivalStation: 2,
			DepartureTimestamp: minAfter(t0, 0), ArrivalTimestamp: minAfter(t0, 5), CDF: []float64{0.2}},
		{TripID: "T1", Type: "Bus", DepartureStation: 2, ArrivalStation: 1,
			DepartureTimestamp: minAfter(t0, 5), ArrivalTimestamp: minAfter(t0, 10), CDF: []float64{1}},
	}
	store := mustStore(t, conns, mustWalk(t, 3), []string{"A", "B", "C"})
	p := planner.New(store)

	times, err := p.TimesFrom("A", t0, 0.9)
	require.NoError(t, err)
	require.Equal(t, 0, times["A"])
	require.Equal(t, int(scan.DefaultHorizon/time.Minute), times["B"])
}

func TestTimesFrom_ReachableStationReportsArrivalOffset(t *testing.T) {
	t0 := baseTime()
	conns := []timetable.Connection{
		{TripID: "T1", Type: "Bus", DepartureStation: 0, ArrivalStation: 1,
			DepartureTimestamp: minAfter(t0, 2), ArrivalTimestamp: minAfter(t0, 10), CDF: []float64{1}},
	}
	store := mustStore(t, conns, mustWalk(t, 2), []string{"A", "B"})
	p := planner.New(store)

	times, err := p.TimesFrom("A", t0, 1)
	require.NoError(t, err)
	require.Equal(t, 10, times["B"])
}

// TestTimesFromNamed_DefaultsToCanonicalTolerances covers §
// SUPPLEMENTED FEATURES' generalized times_to_stations_from_hbf.
func TestTimesFromNamed_DefaultsToCanonicalTolerances(t *testing.T) {
	t0 := baseTime()
	store := mustStore(t, nil, mustWalk(t, 2, [3]int{0, 1, 5}), []string{"A", "B"})
	p := planner.New(store)

	byTol, err := p.TimesFromNamed("A", t0, nil)
	require.NoError(t, err)
	require.Len(t, byTol, len(planner.CanonicalTolerances))
	for _, tol := range planner.CanonicalTolerances {
		require.Equal(t, 5, byTol[tol]["B"])
	}
}

func TestBandIsochrone_BucketsAndOverflows(t *testing.T) {
	times := map[string]int{
		"A": 0,
		"B": 14,
		"C": 29,
		"D": 240,
	}
	bands := planner.BandIsochrone(times, planner.BandMinutes)
	require.ElementsMatch(t, []string{"A", "B"}, bands[0])
	require.ElementsMatch(t, []string{"C"}, bands[1])
	require.ElementsMatch(t, []string{"D"}, bands[planner.OverflowBand])
}

package frontier_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jheitmann/robust-journey-planner/frontier"
	"github.com/jheitmann/robust-journey-planner/timetable"
)

func minutes(base time.Time, m int) time.Time { return base.Add(time.Duration(m) * time.Minute) }

// assertPareto verifies the probability half of P1: every pair of entries
// a-before-b satisfies a.Prob < b.Prob. Arrival order is not checked here,
// since the Frontier API exposes only entry 0's arrival time.
func assertPareto(t *testing.T, f *frontier.Frontier) {
	t.Helper()
	for i := 1; i < f.Len(); i++ {
		_, prevPred := f.GetIndices(i - 1)
		_ = prevPred
		prevProb := f.GetProbability(i - 1)
		prob := f.GetProbability(i)
		require.Less(t, prevProb, prob, "entries must strictly increase in probability")
	}
}

func TestFrontier_SentinelAtConstruction(t *testing.T) {
	base := time.Now()
	maxTS := minutes(base, 240)
	f := frontier.New(maxTS)
	require.Equal(t, maxTS, f.EarliestArrival())
	connIdx, pred := f.GetIndices(0)
	require.Equal(t, frontier.NoConnection, connIdx)
	require.Equal(t, frontier.OriginPred, pred)
	require.Equal(t, 0.0, f.GetProbability(0))
}

func TestFrontier_FirstLabelReplacesSentinel(t *testing.T) {
	base := time.Now()
	f := frontier.New(minutes(base, 240))

	require.True(t, f.Update(-1, minutes(base, 10), -1, 1))
	require.Equal(t, minutes(base, 10), f.EarliestArrival())
	assertPareto(t, f)
}

func TestFrontier_RejectsDominatedArrival(t *testing.T) {
	base := time.Now()
	f := frontier.New(minutes(base, 240))
	require.True(t, f.Update(-1, minutes(base, 10), -1, 0.9))

	// Later in time AND worse probability: rejected by step 1's gate on
	// the previous last entry.
	require.False(t, f.Update(0, minutes(base, 240), -1, 0.1))
}

func TestFrontier_InsertBeforeExistingEntries(t *testing.T) {
	base := time.Now()
	f := frontier.New(minutes(base, 240))
	require.True(t, f.Update(-1, minutes(base, 20), -1, 0.5))
	require.True(t, f.Update(-1, minutes(base, 30), -1, 0.9))

	// A strictly earlier arrival with a probability below both existing
	// tiers must be inserted at the front, not rejected.
	require.True(t, f.Update(-1, minutes(base, 10), -1, 0.2))
	assertPareto(t, f)
	require.Equal(t, minutes(base, 10), f.EarliestArrival())
}

func TestFrontier_NewEntryDominatesSuffix(t *testing.T) {
	base := time.Now()
	f := frontier.New(minutes(base, 240))
	require.True(t, f.Update(-1, minutes(base, 20), -1, 0.5))
	require.True(t, f.Update(-1, minutes(base, 30), -1, 0.9))

	// An earlier arrival than the 0.9 entry with a higher probability
	// replaces it; the 0.5 entry stays since it arrives earlier still.
	require.True(t, f.Update(-1, minutes(base, 25), -1, 0.95))
	assertPareto(t, f)
	require.Equal(t, 2, f.Len()) // the 0.5 entry + the 0.95 entry; the sentinel went with the first update
}

func TestFrontier_RejectsSameTimeWorseProbability(t *testing.T) {
	base := time.Now()
	f := frontier.New(minutes(base, 240))
	require.True(t, f.Update(-1, minutes(base, 20), -1, 0.5))

	require.False(t, f.Update(-1, minutes(base, 20), -1, 0.4))
}

func TestFrontier_BestConnecting_UsesCDFBuffer(t *testing.T) {
	base := time.Now()
	conns := []timetable.Connection{
		{CDF: []float64{0.2, 0.6, 1}},
	}
	f := frontier.New(minutes(base, 240))
	require.True(t, f.Update(0, minutes(base, 10), -1, 0.8))

	// Departing 1 minute after arrival -> buffer=1 -> CDF[1]=0.6 -> 0.48.
	idx, prob := f.BestConnecting(conns, minutes(base, 11))
	require.Equal(t, 0, idx)
	require.InDelta(t, 0.48, prob, 1e-9)
}

func TestFrontier_BestConnecting_OriginSeedAlwaysCatches(t *testing.T) {
	base := time.Now()
	f := frontier.New(minutes(base, 240))
	require.True(t, f.Update(-1, minutes(base, 5), -1, 1))

	idx, prob := f.BestConnecting(nil, minutes(base, 5))
	require.Equal(t, 0, idx)
	require.Equal(t, 1.0, prob)
}

func TestFrontier_BestConnecting_NoQualifyingEntry(t *testing.T) {
	base := time.Now()
	f := frontier.New(minutes(base, 240))
	require.True(t, f.Update(-1, minutes(base, 30), -1, 1))

	idx, prob := f.BestConnecting(nil, minutes(base, 10))
	require.Equal(t, -1, idx)
	require.Equal(t, 0.0, prob)
}

func TestTripBoardingEncoding_RoundTrips(t *testing.T) {
	for k := 0; k < 5; k++ {
		encoded := frontier.EncodeTripBoarding(k)
		require.True(t, encoded < 0)
		require.Equal(t, k, frontier.DecodeTripBoarding(encoded))
	}
}

func TestIsTripBoarding(t *testing.T) {
	require.False(t, frontier.IsTripBoarding(frontier.NoConnection, frontier.OriginPred))
	require.True(t, frontier.IsTripBoarding(7, frontier.EncodeTripBoarding(0)))
	require.False(t, frontier.IsTripBoarding(7, 3))
}

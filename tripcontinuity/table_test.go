package tripcontinuity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jheitmann/robust-journey-planner/frontier"
	"github.com/jheitmann/robust-journey-planner/tripcontinuity"
)

func TestApply_FirstBoardingIsRecorded(t *testing.T) {
	tbl := tripcontinuity.New()
	pred, prob := tbl.Apply("T1", 3, 5, 0.8)
	require.Equal(t, 5, pred)
	require.Equal(t, 0.8, prob)
	require.Equal(t, []tripcontinuity.Boarding{{ConnIdx: 3, PredEntry: 5, Prob: 0.8}}, tbl.Boardings("T1"))
}

func TestApply_FreshBoardingBeatsPreviousOne(t *testing.T) {
	tbl := tripcontinuity.New()
	tbl.Apply("T1", 3, 5, 0.5)

	pred, prob := tbl.Apply("T1", 9, 12, 0.9)
	require.Equal(t, 12, pred)
	require.Equal(t, 0.9, prob)
	require.Len(t, tbl.Boardings("T1"), 2)
}

func TestApply_StayOnTripWhenNotBeaten(t *testing.T) {
	tbl := tripcontinuity.New()
	tbl.Apply("T1", 3, 5, 0.9)

	// A weaker or equal fresh boarding must not append a new record; the
	// caller stays on the trip via the encoded hop to boarding 0.
	pred, prob := tbl.Apply("T1", 9, 1, 0.4)
	require.Equal(t, frontier.EncodeTripBoarding(0), pred)
	require.Equal(t, 0.9, prob)
	require.Len(t, tbl.Boardings("T1"), 1)
}

func TestApply_EqualProbabilityStaysOnTrip(t *testing.T) {
	tbl := tripcontinuity.New()
	tbl.Apply("T1", 3, 5, 0.7)

	pred, prob := tbl.Apply("T1", 9, 1, 0.7)
	require.Equal(t, frontier.EncodeTripBoarding(0), pred)
	require.Equal(t, 0.7, prob)
}

func TestApply_SecondHopEncodesLatestBoardingIndex(t *testing.T) {
	tbl := tripcontinuity.New()
	tbl.Apply("T1", 3, 5, 0.5)
	tbl.Apply("T1", 9, 12, 0.9)

	pred, prob := tbl.Apply("T1", 20, 1, 0.1)
	require.Equal(t, frontier.EncodeTripBoarding(1), pred)
	require.Equal(t, 0.9, prob)
}

func TestBoardings_UnknownTripIsNil(t *testing.T) {
	tbl := tripcontinuity.New()
	require.Nil(t, tbl.Boardings("missing"))
}

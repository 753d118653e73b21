package frontier

import "time"

// OriginPred marks an entry with no predecessor: the synthetic origin
// seed created by the scan's initialization step. When it appears as the
// PredEntry of an entry whose ConnIdx is itself -1, it means "this label
// needs no further reconstruction step" (see route.Reconstruct).
const OriginPred = -1

// NoConnection marks the synthetic origin seed's ConnIdx: the traveler is
// already at the station, or arrived there purely by walking from the
// query origin.
const NoConnection = -1

// EncodeTripBoarding packs "trip-continuity hop to the k-th boarding of
// the current trip" (k >= 0) into the PredEntry integer domain, per
// spec.md §4.3/§4.5's negative-predecessor encoding.
func EncodeTripBoarding(k int) int { return -k - 1 }

// DecodeTripBoarding unpacks a PredEntry produced by EncodeTripBoarding
// back into a trip-continuity boarding index. Callers must only call this
// when the PredEntry is known to be a trip-continuity hop (see
// IsTripBoarding).
func DecodeTripBoarding(pred int) int { return -pred - 1 }

// IsTripBoarding reports whether a (ConnIdx, PredEntry) pair read from an
// entry encodes a trip-continuity hop rather than a plain frontier-index
// predecessor. Per §4.5, this distinction is only meaningful once the
// associated connection index is known to be a real connection (ConnIdx
// != NoConnection); the origin seed's own PredEntry == OriginPred (-1)
// must never be decoded as a trip boarding.
func IsTripBoarding(connIdx, predEntry int) bool {
	return connIdx != NoConnection && predEntry < 0
}

// Entry is one label in a station's Pareto frontier (§3): the connection
// that delivered it, the arrival timestamp, the predecessor encoding used
// by reconstruction, and the probability of actually arriving by arr_ts.
type Entry struct {
	ConnIdx   int
	ArrivalTS time.Time
	PredEntry int
	Prob      float64
}

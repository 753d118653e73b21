package tripcontinuity

import "github.com/jheitmann/robust-journey-planner/frontier"

// Boarding records one "best boarding so far" of a trip: the connection
// it was observed on, the predecessor entry of that boarding in the
// departure station's frontier, and the probability of being on the trip
// from that boarding onward.
type Boarding struct {
	ConnIdx   int
	PredEntry int
	Prob      float64
}

// Table maps trip_id to the successive boardings recorded for that trip
// over the course of one scan, most recent last (§3).
type Table struct {
	trips map[string][]Boarding
}

// New creates an empty Trip Continuity Table.
func New() *Table {
	return &Table{trips: make(map[string][]Boarding)}
}

// Boardings returns the recorded boardings of a trip, or nil if the trip
// has not been boarded yet this scan. Used by route reconstruction to
// decode a trip-continuity hop.
func (t *Table) Boardings(tripID string) []Boarding {
	return t.trips[tripID]
}

// Apply applies the §4.3 rule for a connection belonging to tripID, given
// the (predecessor, probability) of a fresh boarding computed by
// Frontier.BestConnecting at the connection's departure station. It
// returns the effective (predecessor, probability) to propagate and
// records the decision in the table.
//
//   - No record yet: the fresh boarding becomes the trip's first record;
//     its (predEntry, prob) is used as-is.
//   - A fresh boarding strictly beating the trip's last recorded
//     probability: appended as a new record; used as-is.
//   - Otherwise: staying on the vehicle is at least as good. The chosen
//     predecessor is the tagged "trip-continuity hop to boarding k" value
//     (frontier.EncodeTripBoarding(k), k = len(trip's records) - 1 before
//     this call), and the chosen probability is the trip's last recorded
//     probability — no catch-probability penalty is re-applied.
func (t *Table) Apply(tripID string, connIdx, freshPred int, freshProb float64) (predEntry int, prob float64) {
	boardings := t.trips[tripID]
	if len(boardings) == 0 {
		t.trips[tripID] = []Boarding{{ConnIdx: connIdx, PredEntry: freshPred, Prob: freshProb}}
		return freshPred, freshProb
	}

	last := boardings[len(boardings)-1]
	if last.Prob < freshProb {
		t.trips[tripID] = append(boardings, Boarding{ConnIdx: connIdx, PredEntry: freshPred, Prob: freshProb})
		return freshPred, freshProb
	}

	return frontier.EncodeTripBoarding(len(boardings) - 1), last.Prob
}

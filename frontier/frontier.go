package frontier

import (
	"time"

	"github.com/jheitmann/robust-journey-planner/timetable"
)

// Frontier is the Pareto set of (arrival time, probability) labels
// reachable at one station during a single scan (§3, §4.2). Entries are
// kept sorted strictly by ArrivalTS ascending and Prob ascending
// simultaneously (invariant F1-F3). A new Frontier holds only a sentinel
// entry at maxTS with probability 0; the first accepted label arriving no
// later than maxTS replaces it, since it dominates the sentinel.
//
// A Frontier is owned by exactly one scan and mutated only by Update.
type Frontier struct {
	entries []Entry
	maxTS   time.Time
}

// New creates a Frontier seeded with the sentinel (-1, maxTS, -1, 0)
// required by F1. maxTS is the scan's time horizon cutoff.
func New(maxTS time.Time) *Frontier {
	return &Frontier{
		entries: []Entry{{ConnIdx: NoConnection, ArrivalTS: maxTS, PredEntry: OriginPred, Prob: 0}},
		maxTS:   maxTS,
	}
}

// EarliestArrival returns entry 0's arrival timestamp (F3): the earliest
// arrival seen so far, or the sentinel maxTS if untouched.
func (f *Frontier) EarliestArrival() time.Time {
	return f.entries[0].ArrivalTS
}

// Len returns the number of entries currently stored, sentinel included.
func (f *Frontier) Len() int { return len(f.entries) }

// GetIndices returns entry i's (ConnIdx, PredEntry), used by route
// reconstruction to step backward.
func (f *Frontier) GetIndices(i int) (connIdx, predEntry int) {
	e := f.entries[i]
	return e.ConnIdx, e.PredEntry
}

// GetProbability returns entry i's arrival probability.
func (f *Frontier) GetProbability(i int) float64 {
	return f.entries[i].Prob
}

// Update inserts a candidate label (connIdx, arrivalTS, predEntry, prob)
// into the frontier, maintaining F1-F3 (§4.2). It reports whether the
// candidate was accepted (it may be rejected as dominated).
//
// Complexity: O(len(entries)) — frontiers stay small in practice, bounded
// by the number of meaningfully distinct probability tiers at a station.
func (f *Frontier) Update(connIdx int, arrivalTS time.Time, predEntry int, prob float64) bool {
	last := f.entries[len(f.entries)-1]

	// Step 1: strictly later than every stored arrival -> append iff it
	// also strictly improves on the last probability.
	if arrivalTS.After(last.ArrivalTS) {
		if prob > last.Prob {
			f.entries = append(f.entries, Entry{ConnIdx: connIdx, ArrivalTS: arrivalTS, PredEntry: predEntry, Prob: prob})
			return true
		}
		return false
	}

	// Step 2: locate the first entry whose arrival is not earlier than
	// the candidate's, tracking the probability immediately preceding it.
	i := 0
	prevProb := 0.0
	for i < len(f.entries) && arrivalTS.After(f.entries[i].ArrivalTS) {
		prevProb = f.entries[i].Prob
		i++
	}
	if prob <= prevProb {
		return false
	}

	next := f.entries[i]
	if prob >= next.Prob {
		// Step 3: dominates a suffix; extend forward and replace [i,j).
		j := i
		for j < len(f.entries) && prob >= f.entries[j].Prob {
			j++
		}
		tail := append([]Entry{}, f.entries[j:]...)
		f.entries = append(f.entries[:i:i], append([]Entry{{ConnIdx: connIdx, ArrivalTS: arrivalTS, PredEntry: predEntry, Prob: prob}}, tail...)...)
		return true
	}

	// Step 4: worse probability than the entry at i; reject a same-time
	// tie, otherwise insert before i.
	if arrivalTS.Equal(next.ArrivalTS) {
		return false
	}
	tail := append([]Entry{}, f.entries[i:]...)
	f.entries = append(f.entries[:i:i], append([]Entry{{ConnIdx: connIdx, ArrivalTS: arrivalTS, PredEntry: predEntry, Prob: prob}}, tail...)...)
	return true
}

// BestConnecting selects the stored label maximizing the probability of
// catching a departure at depTS, per §4.2: for every entry arriving no
// later than depTS, it weighs the entry's probability by the catch
// probability of the connection that delivered it (1 for the origin
// seed). Ties favor the lowest entry index. If no entry qualifies, or the
// best extended probability is exactly 0, it returns (-1, 0).
func (f *Frontier) BestConnecting(conns []timetable.Connection, depTS time.Time) (int, float64) {
	bestIdx := -1
	bestProb := 0.0
	for i, e := range f.entries {
		if e.ArrivalTS.After(depTS) {
			continue
		}
		catchProb := 1.0
		if e.ConnIdx != NoConnection {
			buffer := timetable.MinutesBetween(depTS, e.ArrivalTS)
			catchProb = conns[e.ConnIdx].CatchProbability(buffer)
		}
		extended := e.Prob * catchProb
		if extended > bestProb {
			bestIdx = i
			bestProb = extended
		}
	}
	return bestIdx, bestProb
}

package scan

import (
	"time"

	"github.com/jheitmann/robust-journey-planner/frontier"
	"github.com/jheitmann/robust-journey-planner/timetable"
	"github.com/jheitmann/robust-journey-planner/tripcontinuity"
)

// Result is the per-station frontier state produced by one completed
// scan, plus the bookkeeping route.Reconstruct needs to walk it backward.
type Result struct {
	Origin             int
	Destination        int // NoDestination if this was a full isochrone scan
	Departure          time.Time
	MaxTS              time.Time
	ConnectionsScanned int // how many connections were examined before the sweep stopped; exposes the early-termination rule (§4.4) to tests

	frontiers []*frontier.Frontier
	trips     *tripcontinuity.Table
}

// Frontier returns the completed frontier for station idx.
func (r *Result) Frontier(idx int) *frontier.Frontier { return r.frontiers[idx] }

// Trips returns the completed Trip Continuity Table.
func (r *Result) Trips() *tripcontinuity.Table { return r.trips }

// Run executes the forward Stochastic Connection Scan sweep from origin,
// departing at t0, against store. destination may be NoDestination for a
// full isochrone scan (§4.6 TimesFrom) or a specific station index to
// enable early termination (§4.6 Plan).
//
// Run never fails on "no solution": an unreachable destination simply
// keeps its frontier sentinel (§4.4 Failure). It only rejects malformed
// configuration or out-of-range station indices (§7).
func Run(store *timetable.Store, origin int, departure time.Time, destination int, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	n := store.NStations()
	if origin < 0 || origin >= n {
		return nil, ErrStationOutOfRange
	}
	if destination != NoDestination && (destination < 0 || destination >= n) {
		return nil, ErrStationOutOfRange
	}

	maxTS := departure.Add(cfg.Horizon)
	frontiers := make([]*frontier.Frontier, n)
	for i := range frontiers {
		frontiers[i] = frontier.New(maxTS)
	}

	// Seed the origin itself and each of its walking neighbors with
	// probability-1 labels at t0 (+walk time). §9's Open Questions notes
	// the source only seeds neighbors and leaves reconstruction to prepend
	// the opening walk when needed; we take the alternative it explicitly
	// licenses as equivalent ("an implementer could equivalently seed the
	// origin's frontier directly"), since the walking matrix's absent
	// diagonal would otherwise make any connection departing straight from
	// o unboardable (see DESIGN.md).
	frontiers[origin].Update(frontier.NoConnection, departure, frontier.OriginPred, 1)
	for _, w := range store.WalkNeighbors(origin) {
		frontiers[w.To].Update(frontier.NoConnection, departure.Add(time.Duration(w.Minutes)*time.Minute), frontier.OriginPred, 1)
	}

	trips := tripcontinuity.New()

	earliest := maxTS
	hasDest := destination != NoDestination
	if hasDest {
		earliest = frontiers[destination].EarliestArrival()
	}

	conns := store.Connections()
	scanned := 0
	for i, c := range conns {
		if c.DepartureTimestamp.After(earliest) {
			break
		}
		scanned = i + 1

		depFrontier := frontiers[c.DepartureStation]
		boardings := trips.Boardings(c.TripID)
		relevant := !c.DepartureTimestamp.Before(depFrontier.EarliestArrival()) || len(boardings) > 0
		if !relevant {
			continue
		}

		freshIdx, freshProb := depFrontier.BestConnecting(conns, c.DepartureTimestamp)
		predEntry, prob := trips.Apply(c.TripID, i, freshIdx, freshProb)

		if prob < cfg.Tolerance {
			continue
		}

		arrivalStation := c.ArrivalStation
		neighbors := store.WalkNeighbors(arrivalStation)
		selfIncluded := false
		for _, w := range neighbors {
			if w.To == arrivalStation {
				selfIncluded = true
			}
			frontiers[w.To].Update(i, c.ArrivalTimestamp.Add(time.Duration(w.Minutes)*time.Minute), predEntry, prob)
			if hasDest && w.To == destination {
				earliest = frontiers[destination].EarliestArrival()
			}
		}
		if !selfIncluded {
			frontiers[arrivalStation].Update(i, c.ArrivalTimestamp, predEntry, prob)
			if hasDest && arrivalStation == destination {
				earliest = frontiers[destination].EarliestArrival()
			}
		}
	}

	return &Result{
		Origin:             origin,
		Destination:        destination,
		Departure:          departure,
		MaxTS:              maxTS,
		ConnectionsScanned: scanned,
		frontiers:          frontiers,
		trips:              trips,
	}, nil
}

package route

import (
	"time"

	"github.com/jheitmann/robust-journey-planner/frontier"
	"github.com/jheitmann/robust-journey-planner/scan"
	"github.com/jheitmann/robust-journey-planner/timetable"
)

// Segment is one chronological step of a reconstructed itinerary (§6):
// either a scheduled connection (Type taken from the source feed) or a
// synthetic walk (Type == timetable.WalkType, TripID == "").
type Segment struct {
	TripID             string
	Type               string
	DepartureStation   int
	ArrivalStation     int
	DepartureTimestamp time.Time
	ArrivalTimestamp   time.Time
}

func walkSegment(store *timetable.Store, from, to int, departure time.Time) Segment {
	minutes, _ := store.WalkMinutes(from, to) // absent only on a corrupt scan result; 0 is a safe floor
	return Segment{
		Type:               timetable.WalkType,
		DepartureStation:   from,
		ArrivalStation:     to,
		DepartureTimestamp: departure,
		ArrivalTimestamp:   departure.Add(time.Duration(minutes) * time.Minute),
	}
}

// Reconstruct follows predecessor links backward from destination's best
// frontier entry in a completed scan, producing the chronological route
// (§4.5). It returns nil if the destination's frontier never left its
// sentinel (no solution within the scan's tolerance/horizon).
//
// destination need not be the scan's own Config target: a single full
// isochrone scan.Result (scan.NoDestination) can be reconstructed against
// any number of destinations, as planner.TimesFrom does.
func Reconstruct(store *timetable.Store, result *scan.Result, destination int) []Segment {
	destFrontier := result.Frontier(destination)
	if destFrontier.EarliestArrival().Equal(result.MaxTS) {
		return nil
	}

	connIdx, predEntry := destFrontier.GetIndices(0)
	nextStation := destination
	nextTrip := ""

	var segments []Segment
	for connIdx != frontier.NoConnection {
		c := store.Connections()[connIdx]

		if c.TripID != nextTrip && c.ArrivalStation != nextStation {
			segments = append(segments, walkSegment(store, c.ArrivalStation, nextStation, c.ArrivalTimestamp))
		}
		segments = append(segments, Segment{
			TripID:             c.TripID,
			Type:               c.Type,
			DepartureStation:   c.DepartureStation,
			ArrivalStation:     c.ArrivalStation,
			DepartureTimestamp: c.DepartureTimestamp,
			ArrivalTimestamp:   c.ArrivalTimestamp,
		})

		nextStation = c.DepartureStation
		nextTrip = c.TripID

		if frontier.IsTripBoarding(connIdx, predEntry) {
			boardings := result.Trips().Boardings(c.TripID)
			k := frontier.DecodeTripBoarding(predEntry)
			b := boardings[k]
			connIdx, predEntry = b.ConnIdx, b.PredEntry
		} else {
			connIdx, predEntry = result.Frontier(c.DepartureStation).GetIndices(predEntry)
		}
	}

	// The chain of predecessors always bottoms out at a frontier entry
	// seeded directly from the origin (§4.4 Initialization): either the
	// origin's own seed (nextStation == origin already) or a walking
	// neighbor's seed, in which case the opening walk from origin to that
	// neighbor was never an explicit segment and must be prepended here
	// (§4.5, and the only way to uphold P7's "first departure_station ==
	// origin" when the journey's first leg is on foot).
	if nextStation != result.Origin {
		segments = append(segments, walkSegment(store, result.Origin, nextStation, result.Departure))
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments
}

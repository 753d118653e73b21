package timetable

import (
	"errors"
	"time"
)

// Sentinel errors returned while constructing or querying a Store.
var (
	// ErrUnsortedConnections indicates the connection list is not
	// nondecreasing in DepartureTimestamp.
	ErrUnsortedConnections = errors.New("timetable: connections are not sorted by departure timestamp")

	// ErrStationOutOfRange indicates a connection or walk edge references a
	// station index outside [0, NStations).
	ErrStationOutOfRange = errors.New("timetable: station index out of range")

	// ErrInvalidCDF indicates a connection's CDF is empty, contains a value
	// outside [0,1], or is not nondecreasing.
	ErrInvalidCDF = errors.New("timetable: connection CDF must be a nondecreasing sequence in [0,1]")

	// ErrNegativeWalkTime indicates a walking-matrix entry has a negative
	// minute count.
	ErrNegativeWalkTime = errors.New("timetable: walking time must be nonnegative")

	// ErrStationNameMismatch indicates the station name/index maps are not
	// inverses of one another.
	ErrStationNameMismatch = errors.New("timetable: station index and name maps disagree")

	// ErrUnknownStation marks a station name with no entry; StationOf
	// reports that case with ok=false, and the planner wraps this error.
	ErrUnknownStation = errors.New("timetable: unknown station name")
)

// WalkType is the synthetic connection Type used for a generated walking
// segment. Scheduled connections carry whatever Type their source feed
// assigned (§4.3 and the GLOSSARY leave this uninterpreted by the scan).
const WalkType = "Walk"

// Connection is a single timetabled edge: one vehicle moving from one
// station to another within one trip. Synthetic walks inserted by route
// reconstruction are route.Segment values (TripID == "", Type ==
// WalkType), not Connections.
//
// CDF[k] is the probability that a passenger with k minutes of buffer
// between this connection's scheduled arrival and the next desired
// departure still catches that next connection. For buffers at or beyond
// len(CDF), the catch probability is 1.
type Connection struct {
	TripID             string
	Type               string
	DepartureStation   int
	ArrivalStation     int
	DepartureTimestamp time.Time
	ArrivalTimestamp   time.Time
	CDF                []float64
}

// CatchProbability returns the probability of catching this connection
// given a nonnegative buffer of whole minutes.
func (c Connection) CatchProbability(bufferMinutes int) float64 {
	if bufferMinutes >= len(c.CDF) {
		return 1
	}
	return c.CDF[bufferMinutes]
}

// MinutesBetween truncates a duration between two timestamps to whole
// minutes, matching the spec's whole-minute resolution for buffer and
// duration computations.
func MinutesBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier) / time.Minute)
}

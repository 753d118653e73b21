package route

import "time"

// Step is one human-consumable leg of a route: a walk, or a vehicle ride
// collapsing every segment of one uninterrupted trip boarding into its
// boarding station/time and its alighting station/time. It mirrors the
// original Flask front-end's route_to_steps grouping (§ SUPPLEMENTED
// FEATURES in SPEC_FULL.md), independent of any web framework.
type Step struct {
	TripID             string
	Type               string
	DepartureStation   int
	ArrivalStation     int
	DepartureTimestamp time.Time
	ArrivalTimestamp   time.Time
}

// Steps groups consecutive segments sharing a TripID into a single Step,
// the way the original route_to_steps folded "board here, alight there"
// pairs for display. Each walk segment (TripID == "") is always its own
// step, since consecutive walks never share a trip to merge under.
func Steps(segments []Segment) []Step {
	steps := make([]Step, 0, len(segments))
	i := 0
	for i < len(segments) {
		first := segments[i]
		j := i + 1
		if first.TripID != "" {
			for j < len(segments) && segments[j].TripID == first.TripID {
				j++
			}
		}
		last := segments[j-1]
		steps = append(steps, Step{
			TripID:             first.TripID,
			Type:               first.Type,
			DepartureStation:   first.DepartureStation,
			ArrivalStation:     last.ArrivalStation,
			DepartureTimestamp: first.DepartureTimestamp,
			ArrivalTimestamp:   last.ArrivalTimestamp,
		})
		i = j
	}
	return steps
}

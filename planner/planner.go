package planner

import (
	"fmt"
	"time"

	"github.com/jheitmann/robust-journey-planner/route"
	"github.com/jheitmann/robust-journey-planner/scan"
	"github.com/jheitmann/robust-journey-planner/timetable"
)

// CanonicalTolerances lists the four tolerance values the original
// journey-planner's isochrone page computed side by side (§
// SUPPLEMENTED FEATURES, "Isochrone banding"), used by TimesFromNamed.
var CanonicalTolerances = []float64{0.5, 0.75, 0.9, 1.0}

// Planner is the read-only facade over a shared timetable.Store: every
// method instantiates its own scan, so a single Planner may serve any
// number of concurrent Plan/TimesFrom calls (§5 Concurrency & Resource
// Model — queries are independent, the Store is immutable).
type Planner struct {
	store *timetable.Store
}

// New wraps store in a Planner.
func New(store *timetable.Store) *Planner {
	return &Planner{store: store}
}

func (p *Planner) resolve(name string) (int, error) {
	idx, ok := p.store.StationOf(name)
	if !ok {
		return 0, fmt.Errorf("planner: %w: %q", timetable.ErrUnknownStation, name)
	}
	return idx, nil
}

// Plan runs a scan targeting destination and returns the reconstructed
// route (§4.6). It returns a nil, non-empty-error-free route when no
// itinerary clears the tolerance within the horizon (§4.4 Failure, §7
// "no-solution is not an error").
func (p *Planner) Plan(origin, destination string, departure time.Time, tolerance float64, opts ...scan.Option) ([]route.Segment, error) {
	o, err := p.resolve(origin)
	if err != nil {
		return nil, err
	}
	d, err := p.resolve(destination)
	if err != nil {
		return nil, err
	}

	result, err := scan.Run(p.store, o, departure, d, scan.NewConfig(tolerance, opts...))
	if err != nil {
		return nil, err
	}
	return route.Reconstruct(p.store, result, d), nil
}

// TimesFrom runs a single full isochrone scan from origin (no destination
// target, so no early termination) and reconstructs against every other
// station, reporting the arrival offset in whole minutes or the
// Δ·60 "unreachable" sentinel (§4.6).
func (p *Planner) TimesFrom(origin string, departure time.Time, tolerance float64, opts ...scan.Option) (map[string]int, error) {
	o, err := p.resolve(origin)
	if err != nil {
		return nil, err
	}

	cfg := scan.NewConfig(tolerance, opts...)
	result, err := scan.Run(p.store, o, departure, scan.NoDestination, cfg)
	if err != nil {
		return nil, err
	}

	unreachable := int(cfg.Horizon / time.Minute)
	times := make(map[string]int, p.store.NStations())
	for idx := 0; idx < p.store.NStations(); idx++ {
		name, ok := p.store.NameOf(idx)
		if !ok {
			continue
		}
		if idx == o {
			times[name] = 0
			continue
		}
		segments := route.Reconstruct(p.store, result, idx)
		if len(segments) == 0 {
			times[name] = unreachable
			continue
		}
		last := segments[len(segments)-1]
		times[name] = timetable.MinutesBetween(last.ArrivalTimestamp, departure)
	}
	return times, nil
}

// TimesFromNamed generalizes the original implementation's
// times_to_stations_from_hbf "isochrones from a fixed commonly-used
// origin" shortcut (§ SUPPLEMENTED FEATURES): rather than hardcoding a
// single Zürich-specific station, it runs TimesFrom once per tolerance in
// tolerances (CanonicalTolerances by default) from any caller-supplied
// origin, returning one times-map per tolerance.
func (p *Planner) TimesFromNamed(origin string, departure time.Time, tolerances []float64, opts ...scan.Option) (map[float64]map[string]int, error) {
	if len(tolerances) == 0 {
		tolerances = CanonicalTolerances
	}
	out := make(map[float64]map[string]int, len(tolerances))
	for _, tol := range tolerances {
		times, err := p.TimesFrom(origin, departure, tol, opts...)
		if err != nil {
			return nil, err
		}
		out[tol] = times
	}
	return out, nil
}

package scan

import (
	"errors"
	"time"
)

// DefaultHorizon is the time budget Δ applied when no horizon option is
// given (§4.6: "Δ=4h").
const DefaultHorizon = 4 * time.Hour

// NoDestination marks a scan with no destination target: no early
// termination, full isochrone sweep (§4.4).
const NoDestination = -1

// Sentinel errors rejected at construction time, before a sweep starts
// (§7 input-shape errors).
var (
	// ErrInvalidTolerance indicates Tolerance is outside (0,1].
	ErrInvalidTolerance = errors.New("scan: tolerance must be in (0,1]")

	// ErrInvalidHorizon indicates Horizon is not a positive duration.
	ErrInvalidHorizon = errors.New("scan: horizon must be positive")

	// ErrStationOutOfRange indicates the origin or destination station
	// index is outside the timetable's station range.
	ErrStationOutOfRange = errors.New("scan: station index out of range")
)

// Config bundles a scan's tunables: the probability tolerance τ and the
// time horizon Δ (§4.4, §6).
type Config struct {
	Tolerance float64
	Horizon   time.Duration
}

// Option configures a Config, following the functional-options pattern
// used throughout this module (mirrors dijkstra.Option).
type Option func(*Config)

// WithHorizon overrides the default 4-hour time horizon.
func WithHorizon(d time.Duration) Option {
	return func(c *Config) { c.Horizon = d }
}

// NewConfig builds a Config for tolerance τ with DefaultHorizon, then
// applies opts left-to-right.
func NewConfig(tolerance float64, opts ...Option) Config {
	cfg := Config{Tolerance: tolerance, Horizon: DefaultHorizon}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c Config) validate() error {
	if c.Tolerance <= 0 || c.Tolerance > 1 {
		return ErrInvalidTolerance
	}
	if c.Horizon <= 0 {
		return ErrInvalidHorizon
	}
	return nil
}

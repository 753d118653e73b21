// Package tripcontinuity implements the Trip Continuity Table from
// spec.md §3/§4.3: per-trip record of the best boardings seen so far
// during a scan, letting a connection that stays on the same vehicle
// avoid re-paying a fresh boarding-probability penalty.
package tripcontinuity

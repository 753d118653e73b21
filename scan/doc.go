// Package scan implements the Stochastic Connection Scan engine (§4.4):
// the forward sweep over a time-sorted connection list that drives
// per-station frontier updates via frontier.Frontier and
// tripcontinuity.Table, enforcing the early-termination rule and the
// probability-tolerance cutoff.
//
// A scan is single-threaded and self-contained (§5): it owns one
// frontier.Frontier per station and one tripcontinuity.Table, allocated
// fresh for the query and discarded when the scan returns. The shared
// timetable.Store it reads is immutable and safe to reuse across any
// number of concurrent scans.
package scan

// Package timetable holds the immutable, read-only inputs to a stochastic
// connection scan: the time-sorted list of stochastic connections, the
// sparse inter-station walking-time adjacency, and the bidirectional
// station name/index maps.
//
// A Store is built once (typically by the ingest package, from whatever
// already-materialized artifacts an upstream ingestion pipeline produced)
// and then shared read-only across any number of concurrent scans. It
// performs no I/O and holds no per-query mutable state; all of that lives
// in the frontier, tripcontinuity and scan packages.
package timetable

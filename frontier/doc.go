// Package frontier implements the per-station Pareto frontier of
// (arrival time, route probability) labels described in spec.md §3/§4.2:
// an ordered list of entries, strictly increasing in both arrival time and
// probability, plus the predecessor bookkeeping route reconstruction walks
// backward over.
//
// A frontier owns its entries; nothing outside this package mutates them.
// Predecessors are encoded as plain ints, never back-pointers: a
// nonnegative value is an index into another frontier's entry slice; on an
// entry whose ConnIdx is NoConnection, -1 marks the synthetic origin seed;
// on an entry with a real connection, any negative value (-1 included) is
// decoded by the route package as "trip-boarding index k = -pred-1" (see
// IsTripBoarding; §4.3, §9 Design Notes — Predecessor is a tagged
// union over FrontierEntry(i) | Origin | TripBoarding(k) hiding behind an
// int so reconstruction stays a pure integer walk).
package frontier

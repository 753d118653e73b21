// Package route implements the Route Reconstructor (§4.5): given a
// completed scan.Result, it follows predecessor links backward from the
// destination frontier's best entry to produce a chronological,
// human-consumable itinerary, inserting synthetic walking segments where
// the traveler covered ground on foot.
package route

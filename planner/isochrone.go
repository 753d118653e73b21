package planner

import "sort"

// BandMinutes is the width of each isochrone band reproduced from the
// original /iso route's range(k*15,(k+1)*15) grouping (§ SUPPLEMENTED
// FEATURES, "Isochrone banding").
const BandMinutes = 15

// OverflowBand is the key BandIsochrone uses for every station whose
// time falls at or beyond bandMinutes*overflowBandCount, mirroring the
// original's trailing range(150, 241) "150 min or more" band.
const OverflowBand = -1

const overflowBandCount = 9 // k in range(9): bands [0,15) .. [120,135) before range(150,241)

// BandIsochrone buckets a TimesFrom result into bandMinutes-wide bands
// keyed by band index (0 => [0,bandMinutes), 1 => [bandMinutes,2*bandMinutes), ...),
// plus OverflowBand for anything at or beyond the ninth band, the way
// journey_planner_main.py's isochrones_from_times did for map rendering.
// The original left times in [135,150) out of every band entirely (its
// trailing range started at 150, not 135); this folds that gap into
// OverflowBand instead of silently dropping those stations.
func BandIsochrone(times map[string]int, bandMinutes int) map[int][]string {
	bands := make(map[int][]string)
	for name, minutes := range times {
		band := minutes / bandMinutes
		if band >= overflowBandCount {
			band = OverflowBand
		}
		bands[band] = append(bands[band], name)
	}
	for band := range bands {
		sort.Strings(bands[band])
	}
	return bands
}

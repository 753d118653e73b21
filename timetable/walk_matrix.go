package timetable

import "sort"

// WalkEdge is one entry of a station's walking-time adjacency: a
// reachable neighbor and the whole-minute walking time to reach it.
type WalkEdge struct {
	To      int
	Minutes int
}

// WalkMatrix is a sparse, not-necessarily-symmetric adjacency over station
// indices. It is stored as a per-station sorted slice (compressed-sparse-row
// style, per the Design Notes in spec.md §9) so Neighbors(u) is O(deg(u))
// rather than O(S).
type WalkMatrix struct {
	neighbors [][]WalkEdge // neighbors[u] sorted by To
}

// NewWalkMatrix builds a WalkMatrix over nStations stations from a sparse
// list of (from, to, minutes) entries. Entries need not be sorted. A
// diagonal (from == to) entry is not required and not rejected; it is
// stored like any other entry.
func NewWalkMatrix(nStations int, entries []struct {
	From, To, Minutes int
}) (*WalkMatrix, error) {
	neighbors := make([][]WalkEdge, nStations)
	for _, e := range entries {
		if e.From < 0 || e.From >= nStations || e.To < 0 || e.To >= nStations {
			return nil, ErrStationOutOfRange
		}
		if e.Minutes < 0 {
			return nil, ErrNegativeWalkTime
		}
		neighbors[e.From] = append(neighbors[e.From], WalkEdge{To: e.To, Minutes: e.Minutes})
	}
	for u := range neighbors {
		sort.Slice(neighbors[u], func(i, j int) bool { return neighbors[u][i].To < neighbors[u][j].To })
	}
	return &WalkMatrix{neighbors: neighbors}, nil
}

// Neighbors returns the walking neighbors of station u, i.e. the stations
// v with a stored (u,v) entry, sorted by station index. The slice must not
// be mutated by callers.
func (m *WalkMatrix) Neighbors(u int) []WalkEdge {
	if u < 0 || u >= len(m.neighbors) {
		return nil
	}
	return m.neighbors[u]
}

// WalkMinutes returns the walking time u->v and whether an entry exists.
func (m *WalkMatrix) WalkMinutes(u, v int) (int, bool) {
	for _, e := range m.Neighbors(u) {
		if e.To == v {
			return e.Minutes, true
		}
		if e.To > v {
			break
		}
	}
	return 0, false
}

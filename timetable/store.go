package timetable

// Store is the immutable, shared-read-only timetable handed to every scan:
// a time-sorted connection list, the walking adjacency, and the
// bidirectional station name/index maps (§4.1). It is constructed once
// (see the ingest package) and performs no I/O during a query.
type Store struct {
	conns        []Connection
	walk         *WalkMatrix
	stationIdx   map[string]int
	indexStation []string
	coords       map[string][2]float64 // name -> (lon, lat)
}

// NewStore validates and assembles a Store from already-prepared inputs.
// It rejects input-shape errors (§7) before any scan can start:
//   - conns must be nondecreasing in DepartureTimestamp (ties allowed),
//   - every station index referenced by a connection or by walk must lie
//     in [0, len(indexStation)),
//   - every connection's CDF must be a nondecreasing sequence in [0,1],
//   - stationIdx and indexStation must be inverses of one another.
func NewStore(conns []Connection, walk *WalkMatrix, stationIdx map[string]int, indexStation []string) (*Store, error) {
	n := len(indexStation)
	if len(stationIdx) != n {
		return nil, ErrStationNameMismatch
	}
	for name, idx := range stationIdx {
		if idx < 0 || idx >= n || indexStation[idx] != name {
			return nil, ErrStationNameMismatch
		}
	}

	var lastDeparture int64
	haveLast := false
	for i, c := range conns {
		if c.DepartureStation < 0 || c.DepartureStation >= n || c.ArrivalStation < 0 || c.ArrivalStation >= n {
			return nil, ErrStationOutOfRange
		}
		if err := validateCDF(c.CDF); err != nil {
			return nil, err
		}
		ts := c.DepartureTimestamp.Unix()
		if haveLast && ts < lastDeparture {
			return nil, ErrUnsortedConnections
		}
		lastDeparture = ts
		haveLast = true
		_ = i
	}
	if walk != nil {
		for u, edges := range walk.neighbors {
			for _, e := range edges {
				if u >= n || e.To >= n {
					return nil, ErrStationOutOfRange
				}
			}
		}
	}

	return &Store{
		conns:        conns,
		walk:         walk,
		stationIdx:   stationIdx,
		indexStation: indexStation,
		coords:       map[string][2]float64{},
	}, nil
}

func validateCDF(cdf []float64) error {
	if len(cdf) == 0 {
		return ErrInvalidCDF
	}
	prev := 0.0
	for _, p := range cdf {
		if p < 0 || p > 1 || p < prev {
			return ErrInvalidCDF
		}
		prev = p
	}
	return nil
}

// Connections returns the ordered connection sequence, nondecreasing in
// DepartureTimestamp.
func (s *Store) Connections() []Connection { return s.conns }

// WalkNeighbors returns the walking neighbors of station u.
func (s *Store) WalkNeighbors(u int) []WalkEdge { return s.walk.Neighbors(u) }

// WalkMinutes returns the whole-minute walking time u->v, if any.
func (s *Store) WalkMinutes(u, v int) (int, bool) { return s.walk.WalkMinutes(u, v) }

// NStations returns the number of stations in the network.
func (s *Store) NStations() int { return len(s.indexStation) }

// StationOf resolves a station name to its index.
func (s *Store) StationOf(name string) (int, bool) {
	idx, ok := s.stationIdx[name]
	return idx, ok
}

// NameOf resolves a station index to its name.
func (s *Store) NameOf(idx int) (string, bool) {
	if idx < 0 || idx >= len(s.indexStation) {
		return "", false
	}
	return s.indexStation[idx], true
}

// SetCoordinate records a station's (longitude, latitude), passed through
// uninterpreted by the scan (§6 inputs) for front-end map rendering.
func (s *Store) SetCoordinate(name string, lon, lat float64) {
	s.coords[name] = [2]float64{lon, lat}
}

// Coordinate looks up a station's (longitude, latitude).
func (s *Store) Coordinate(name string) (lon, lat float64, ok bool) {
	c, ok := s.coords[name]
	if !ok {
		return 0, 0, false
	}
	return c[0], c[1], true
}

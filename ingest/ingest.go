// Package ingest builds a timetable.Store from rows already materialized
// in Postgres: the connections, walking_times and stations tables an
// upstream feed-parsing pipeline populated. This is still "handed a
// materialized, already-sorted connection list" per spec.md §1 — it is
// not raw GTFS parsing, which stays out of scope.
package ingest

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jheitmann/robust-journey-planner/timetable"
)

// LoadStore queries the stations, connections and walking_times tables
// and assembles a timetable.Store, rejecting any input-shape violation
// timetable.NewStore detects (§7 input-shape errors).
func LoadStore(ctx context.Context, pool *pgxpool.Pool) (*timetable.Store, error) {
	stationIdx, indexStation, coords, err := loadStations(ctx, pool)
	if err != nil {
		return nil, err
	}

	conns, err := loadConnections(ctx, pool)
	if err != nil {
		return nil, err
	}

	walk, err := loadWalkMatrix(ctx, pool, len(indexStation))
	if err != nil {
		return nil, err
	}

	store, err := timetable.NewStore(conns, walk, stationIdx, indexStation)
	if err != nil {
		return nil, err
	}
	for name, c := range coords {
		store.SetCoordinate(name, c[0], c[1])
	}
	return store, nil
}

func loadStations(ctx context.Context, pool *pgxpool.Pool) (stationIdx map[string]int, indexStation []string, coords map[string][2]float64, err error) {
	rows, err := pool.Query(ctx, `
		SELECT idx, name, lon, lat
		FROM stations
		ORDER BY idx ASC`)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ingest: query stations: %w", err)
	}
	defer rows.Close()

	stationIdx = make(map[string]int)
	coords = make(map[string][2]float64)
	for rows.Next() {
		var idx int
		var name string
		var lon, lat float64
		if err := rows.Scan(&idx, &name, &lon, &lat); err != nil {
			return nil, nil, nil, fmt.Errorf("ingest: scan station: %w", err)
		}
		if idx != len(indexStation) {
			return nil, nil, nil, fmt.Errorf("ingest: stations.idx must be a dense 0..n-1 sequence, got %d at position %d", idx, len(indexStation))
		}
		indexStation = append(indexStation, name)
		stationIdx[name] = idx
		coords[name] = [2]float64{lon, lat}
	}
	return stationIdx, indexStation, coords, rows.Err()
}

func loadConnections(ctx context.Context, pool *pgxpool.Pool) ([]timetable.Connection, error) {
	rows, err := pool.Query(ctx, `
		SELECT trip_id, type, departure_station, arrival_station,
		       departure_timestamp, arrival_timestamp, cdf
		FROM connections
		ORDER BY departure_timestamp ASC`)
	if err != nil {
		return nil, fmt.Errorf("ingest: query connections: %w", err)
	}
	defer rows.Close()

	var conns []timetable.Connection
	for rows.Next() {
		var c timetable.Connection
		if err := rows.Scan(
			&c.TripID, &c.Type, &c.DepartureStation, &c.ArrivalStation,
			&c.DepartureTimestamp, &c.ArrivalTimestamp, &c.CDF,
		); err != nil {
			return nil, fmt.Errorf("ingest: scan connection: %w", err)
		}
		conns = append(conns, c)
	}
	return conns, rows.Err()
}

func loadWalkMatrix(ctx context.Context, pool *pgxpool.Pool, nStations int) (*timetable.WalkMatrix, error) {
	rows, err := pool.Query(ctx, `
		SELECT from_station, to_station, minutes
		FROM walking_times`)
	if err != nil {
		return nil, fmt.Errorf("ingest: query walking_times: %w", err)
	}
	defer rows.Close()

	var entries []struct{ From, To, Minutes int }
	for rows.Next() {
		var e struct{ From, To, Minutes int }
		if err := rows.Scan(&e.From, &e.To, &e.Minutes); err != nil {
			return nil, fmt.Errorf("ingest: scan walking_time: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	walk, err := timetable.NewWalkMatrix(nStations, entries)
	if err != nil {
		return nil, fmt.Errorf("ingest: build walk matrix: %w", err)
	}
	return walk, nil
}

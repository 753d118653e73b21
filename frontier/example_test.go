package frontier_test

import (
	"fmt"
	"time"

	"github.com/jheitmann/robust-journey-planner/frontier"
	"github.com/jheitmann/robust-journey-planner/timetable"
)

// ExampleFrontier_Update shows a dominated candidate (lower probability at
// a later arrival) being rejected while an improving one is accepted.
func ExampleFrontier_Update() {
	horizon := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	f := frontier.New(horizon)

	t1 := time.Date(2026, 3, 4, 8, 10, 0, 0, time.UTC)
	t2 := time.Date(2026, 3, 4, 8, 20, 0, 0, time.UTC)

	accepted1 := f.Update(0, t1, frontier.OriginPred, 0.9)
	accepted2 := f.Update(1, t2, frontier.OriginPred, 0.5) // later and worse: dominated

	fmt.Printf("accepted1=%v accepted2=%v len=%d\n", accepted1, accepted2, f.Len())
	// Output: accepted1=true accepted2=false len=1
}

// ExampleFrontier_BestConnecting picks the best label that arrives in time
// to board a connection, weighting by that connection's catch probability.
func ExampleFrontier_BestConnecting() {
	horizon := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	f := frontier.New(horizon)

	arrival := time.Date(2026, 3, 4, 8, 10, 0, 0, time.UTC)
	f.Update(frontier.NoConnection, arrival, frontier.OriginPred, 1)

	conns := []timetable.Connection{
		{CDF: []float64{0.5, 0.9, 1}}, // index 0, unused by this frontier's own entries
	}
	depTS := arrival.Add(2 * time.Minute)
	idx, prob := f.BestConnecting(conns, depTS)
	fmt.Printf("idx=%d prob=%.1f\n", idx, prob)
	// Output: idx=0 prob=1.0
}

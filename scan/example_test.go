package scan_test

import (
	"fmt"
	"time"

	"github.com/jheitmann/robust-journey-planner/scan"
	"github.com/jheitmann/robust-journey-planner/timetable"
)

// ExampleRun sweeps a two-station network with a single connection and
// reads the earliest-arrival probability at the destination.
func ExampleRun() {
	t0 := time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)
	conns := []timetable.Connection{
		{
			TripID: "T1", Type: "Bus",
			DepartureStation: 0, ArrivalStation: 1,
			DepartureTimestamp: t0, ArrivalTimestamp: t0.Add(10 * time.Minute),
			CDF: []float64{1},
		},
	}
	walk, _ := timetable.NewWalkMatrix(2, nil)
	store, err := timetable.NewStore(conns, walk, map[string]int{"A": 0, "B": 1}, []string{"A", "B"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := scan.Run(store, 0, t0, 1, scan.NewConfig(0.9))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dest := result.Frontier(1)
	fmt.Printf("arrival=%s prob=%.0f\n", dest.EarliestArrival().Format("15:04"), dest.GetProbability(0))
	// Output: arrival=08:10 prob=1
}

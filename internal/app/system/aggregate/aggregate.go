// Package aggregate derives the dashboard statistics from a full snapshot of
// planting records. Compute is pure and recomputes the whole view on every
// call; the caller decides when a new snapshot warrants a recompute.
package aggregate

import (
	"sort"

	"github.com/dalemusser/treehub/internal/domain/models"
)

// CO2PerTreeKg is the estimated annual CO₂ absorption of one tree, in kg.
const CO2PerTreeKg = 22

// LeaderboardEntry is one contributor's summed total.
type LeaderboardEntry struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// View holds everything the dashboard derives from a snapshot.
type View struct {
	TotalTrees        int                `json:"totalTrees"`
	AnnualCO2Kg       int                `json:"annualCO2Kg"`
	DistinctLocations int                `json:"distinctLocations"`
	Leaderboard       []LeaderboardEntry `json:"leaderboard"`
}

type coordinate struct {
	lat, lng float64
}

// Compute reduces a snapshot to its View.
//
// Locations are compared by exact (latitude, longitude) value equality, not
// geospatial proximity. The leaderboard has exactly one entry per distinct
// contributor name, sorted descending by total; ties keep the order in which
// the names were first seen in the snapshot, so identical snapshots always
// produce identical views.
func Compute(trees []models.Tree) View {
	view := View{Leaderboard: []LeaderboardEntry{}}

	locations := make(map[coordinate]struct{}, len(trees))
	totals := make(map[string]int, len(trees))
	order := make([]string, 0, len(trees))

	for _, t := range trees {
		view.TotalTrees += t.Count
		locations[coordinate{t.Latitude, t.Longitude}] = struct{}{}

		if _, seen := totals[t.UserName]; !seen {
			order = append(order, t.UserName)
		}
		totals[t.UserName] += t.Count
	}

	view.AnnualCO2Kg = view.TotalTrees * CO2PerTreeKg
	view.DistinctLocations = len(locations)

	for _, name := range order {
		view.Leaderboard = append(view.Leaderboard, LeaderboardEntry{Name: name, Total: totals[name]})
	}
	sort.SliceStable(view.Leaderboard, func(i, j int) bool {
		return view.Leaderboard[i].Total > view.Leaderboard[j].Total
	})

	return view
}

package aggregate_test

import (
	"reflect"
	"testing"

	"github.com/dalemusser/treehub/internal/app/system/aggregate"
	"github.com/dalemusser/treehub/internal/domain/models"
)

func tree(name string, count int, lat, lng float64) models.Tree {
	return models.Tree{UserName: name, Species: "Oak", Count: count, Latitude: lat, Longitude: lng}
}

func TestCompute_EmptySnapshot(t *testing.T) {
	view := aggregate.Compute(nil)

	if view.TotalTrees != 0 {
		t.Errorf("TotalTrees: got %d, want 0", view.TotalTrees)
	}
	if view.AnnualCO2Kg != 0 {
		t.Errorf("AnnualCO2Kg: got %d, want 0", view.AnnualCO2Kg)
	}
	if view.DistinctLocations != 0 {
		t.Errorf("DistinctLocations: got %d, want 0", view.DistinctLocations)
	}
	if len(view.Leaderboard) != 0 {
		t.Errorf("Leaderboard: got %d entries, want 0", len(view.Leaderboard))
	}
}

func TestCompute_TotalsAndLocations(t *testing.T) {
	snapshot := []models.Tree{
		tree("Alice", 3, 10, 10),
		tree("Bob", 5, 10, 10),
		tree("Alice", 2, 20, 20),
	}

	view := aggregate.Compute(snapshot)

	if view.TotalTrees != 10 {
		t.Errorf("TotalTrees: got %d, want 10", view.TotalTrees)
	}
	if view.AnnualCO2Kg != 220 {
		t.Errorf("AnnualCO2Kg: got %d, want 220", view.AnnualCO2Kg)
	}
	if view.DistinctLocations != 2 {
		t.Errorf("DistinctLocations: got %d, want 2", view.DistinctLocations)
	}
}

func TestCompute_LeaderboardSumsAndOrder(t *testing.T) {
	snapshot := []models.Tree{
		tree("Alice", 3, 10, 10),
		tree("Bob", 5, 10, 10),
		tree("Alice", 2, 20, 20),
	}

	view := aggregate.Compute(snapshot)

	// Alice and Bob tie at 5; Alice was seen first in the snapshot.
	want := []aggregate.LeaderboardEntry{
		{Name: "Alice", Total: 5},
		{Name: "Bob", Total: 5},
	}
	if !reflect.DeepEqual(view.Leaderboard, want) {
		t.Errorf("Leaderboard: got %+v, want %+v", view.Leaderboard, want)
	}
}

func TestCompute_LeaderboardDescending(t *testing.T) {
	snapshot := []models.Tree{
		tree("Carol", 1, 0, 0),
		tree("Dan", 7, 1, 1),
		tree("Carol", 2, 2, 2),
		tree("Eve", 4, 3, 3),
	}

	view := aggregate.Compute(snapshot)

	want := []aggregate.LeaderboardEntry{
		{Name: "Dan", Total: 7},
		{Name: "Eve", Total: 4},
		{Name: "Carol", Total: 3},
	}
	if !reflect.DeepEqual(view.Leaderboard, want) {
		t.Errorf("Leaderboard: got %+v, want %+v", view.Leaderboard, want)
	}
}

func TestCompute_OnePerContributor(t *testing.T) {
	snapshot := []models.Tree{
		tree("Alice", 1, 0, 0),
		tree("Alice", 1, 1, 1),
		tree("Alice", 1, 2, 2),
	}

	view := aggregate.Compute(snapshot)

	if len(view.Leaderboard) != 1 {
		t.Fatalf("Leaderboard: got %d entries, want 1", len(view.Leaderboard))
	}
	if view.Leaderboard[0].Total != 3 {
		t.Errorf("Total: got %d, want 3", view.Leaderboard[0].Total)
	}
}

func TestCompute_DistinctLocationsOrderIndependent(t *testing.T) {
	a := []models.Tree{
		tree("Alice", 1, 10, 10),
		tree("Bob", 1, 20, 20),
		tree("Carol", 1, 10, 10),
	}
	b := []models.Tree{a[2], a[0], a[1]}

	if got, want := aggregate.Compute(a).DistinctLocations, aggregate.Compute(b).DistinctLocations; got != want {
		t.Errorf("DistinctLocations differ by order: %d vs %d", got, want)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	snapshot := []models.Tree{
		tree("Alice", 3, 10, 10),
		tree("Bob", 5, 10, 10),
		tree("Alice", 2, 20, 20),
	}

	first := aggregate.Compute(snapshot)
	second := aggregate.Compute(snapshot)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("recompute differs: %+v vs %+v", first, second)
	}
}

package plantings_test

import (
	"testing"
	"time"

	"github.com/dalemusser/treehub/internal/app/store/plantings"
	"github.com/dalemusser/treehub/internal/domain/models"
	"github.com/dalemusser/treehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func record(name, species string, count int, lat, lng float64, plantedAt time.Time) models.Tree {
	return models.Tree{
		UserName:  name,
		Species:   species,
		Count:     count,
		Latitude:  lat,
		Longitude: lng,
		PlantedAt: plantedAt,
	}
}

func TestStore_CreateAssignsID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := plantings.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Create(ctx, record("Alice", "Oak", 3, 10, 10, time.Now().UTC()))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id.IsZero() {
		t.Error("expected a non-zero id")
	}
}

func TestStore_ListReturnsSnapshotInPlantingOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := plantings.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"Alice", "Bob", "Carol"} {
		if _, err := store.Create(ctx, record(name, "Pine", 1, float64(i), float64(i), base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	trees, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(trees) != 3 {
		t.Fatalf("expected 3 records, got %d", len(trees))
	}
	for i, name := range []string{"Alice", "Bob", "Carol"} {
		if trees[i].UserName != name {
			t.Errorf("position %d: got %q, want %q", i, trees[i].UserName, name)
		}
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := plantings.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Create(ctx, record("Alice", "Oak", 2, 0, 0, time.Now().UTC()))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty collection, got %d records", n)
	}
}

func TestStore_DeleteMissingIDIsNoOp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := plantings.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Delete(ctx, primitive.NewObjectID()); err != nil {
		t.Errorf("deleting a missing id should not error, got %v", err)
	}
}

func TestStore_EnsureIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := plantings.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	// Idempotent on rerun.
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes rerun failed: %v", err)
	}
}

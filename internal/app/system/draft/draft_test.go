package draft_test

import (
	"testing"
	"time"

	"github.com/dalemusser/treehub/internal/app/system/draft"
)

func TestNew_Defaults(t *testing.T) {
	d := draft.New()

	if d.Species != "" {
		t.Errorf("Species: got %q, want empty", d.Species)
	}
	if d.Count != 1 {
		t.Errorf("Count: got %d, want 1", d.Count)
	}
	if d.Coordinate != nil {
		t.Error("Coordinate: got non-nil, want nil")
	}
}

func TestSetCount(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"5", 5},
		{"1", 1},
		{"0", 1},
		{"-3", 1},
		{"", 1},
		{"abc", 1},
		{"250", 250},
	}

	for _, tc := range cases {
		d := draft.New()
		d.SetCount(tc.raw)
		if d.Count != tc.want {
			t.Errorf("SetCount(%q): got %d, want %d", tc.raw, d.Count, tc.want)
		}
	}
}

func TestSetCoordinate_RejectsOutOfRange(t *testing.T) {
	cases := []struct {
		lat, lng float64
		want     bool
	}{
		{10, 10, true},
		{-90, -180, true},
		{90, 180, true},
		{91, 0, false},
		{-91, 0, false},
		{0, 181, false},
		{0, -181, false},
	}

	for _, tc := range cases {
		d := draft.New()
		d.SetCoordinate(tc.lat, tc.lng)
		if got := d.Coordinate != nil; got != tc.want {
			t.Errorf("SetCoordinate(%v, %v): set=%v, want %v", tc.lat, tc.lng, got, tc.want)
		}
	}
}

func TestComplete_RequiresCoordinate(t *testing.T) {
	d := draft.New()
	d.Species = "Oak"
	d.SetCount("5")

	if d.Complete() {
		t.Error("draft without coordinate should not be complete")
	}

	d.SetCoordinate(10, 20)
	if !d.Complete() {
		t.Error("draft with coordinate should be complete")
	}
}

func TestComplete_EmptySpeciesAllowed(t *testing.T) {
	d := draft.New()
	d.SetCoordinate(0, 0)

	if !d.Complete() {
		t.Error("empty species with a coordinate should be submittable")
	}
}

func TestRecord(t *testing.T) {
	d := draft.New()
	d.Species = "Baobab"
	d.SetCount("4")
	d.SetCoordinate(-1.28, 36.82)

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	rec := d.Record("Alice", now)

	if rec.UserName != "Alice" {
		t.Errorf("UserName: got %q, want %q", rec.UserName, "Alice")
	}
	if rec.Species != "Baobab" {
		t.Errorf("Species: got %q, want %q", rec.Species, "Baobab")
	}
	if rec.Count != 4 {
		t.Errorf("Count: got %d, want 4", rec.Count)
	}
	if rec.Latitude != -1.28 || rec.Longitude != 36.82 {
		t.Errorf("coordinates: got (%v, %v)", rec.Latitude, rec.Longitude)
	}
	if !rec.PlantedAt.Equal(now) {
		t.Errorf("PlantedAt: got %v, want %v", rec.PlantedAt, now)
	}
}

func TestReset(t *testing.T) {
	d := draft.New()
	d.Species = "Pine"
	d.SetCount("9")
	d.SetCoordinate(45, 45)

	d.Reset()

	if d.Species != "" || d.Count != 1 || d.Coordinate != nil {
		t.Errorf("after Reset: %+v, want empty species, count 1, nil coordinate", d)
	}
}

// Package draft models the in-progress planting form: species, count, and
// the map coordinate picked by the user. A draft is client-local state; the
// create handler parses the submitted form back into a Draft and applies the
// same guard the form does.
package draft

import (
	"strconv"
	"time"

	"github.com/dalemusser/treehub/internal/domain/models"
)

// Coordinate is a picked map position.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinate is within range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Draft is the user's unsaved new-record input. Species and count mutate
// freely while editing; only submission is guarded.
type Draft struct {
	Species    string
	Count      int
	Coordinate *Coordinate
}

// New returns an empty draft with the default count of 1.
func New() Draft {
	return Draft{Count: 1}
}

// SetCount parses a count field permissively: empty, non-numeric, or
// below-1 values all become 1. An empty species or a count of 1 is still
// submittable; the coordinate is the only gate.
func (d *Draft) SetCount(raw string) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		n = 1
	}
	d.Count = n
}

// SetCoordinate records a map click. Out-of-range coordinates are ignored,
// leaving the draft without a selection.
func (d *Draft) SetCoordinate(lat, lng float64) {
	c := Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return
	}
	d.Coordinate = &c
}

// Complete reports whether the draft can be submitted: a coordinate has been
// chosen. The signed-in requirement is enforced by the auth middleware in
// front of the create handler.
func (d Draft) Complete() bool {
	return d.Coordinate != nil
}

// Record materializes the draft into a planting record for the given
// contributor name. The caller must have checked Complete first.
func (d Draft) Record(contributor string, now time.Time) models.Tree {
	return models.Tree{
		UserName:  contributor,
		Species:   d.Species,
		Count:     d.Count,
		Latitude:  d.Coordinate.Lat,
		Longitude: d.Coordinate.Lng,
		PlantedAt: now.UTC(),
	}
}

// Reset clears the draft back to its post-submit state: empty species,
// count 1, no coordinate.
func (d *Draft) Reset() {
	d.Species = ""
	d.Count = 1
	d.Coordinate = nil
}

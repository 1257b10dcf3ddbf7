package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tree is one planting event logged by one user. Documents live in the
// "plantings" collection and are immutable once created; they are removed
// by an explicit delete, never edited.
type Tree struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// UserName is the contributor's display name captured at submission
	// time. It is not updated if the user later renames their account.
	UserName string `bson:"user_name" json:"userName"`

	Species   string    `bson:"species" json:"species"`
	Count     int       `bson:"count" json:"count"`
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	PlantedAt time.Time `bson:"planted_at" json:"plantedAt"`
}

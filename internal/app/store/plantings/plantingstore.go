// internal/app/store/plantings/plantingstore.go
package plantings

import (
	"context"

	"github.com/dalemusser/treehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages planting records in MongoDB. The collection is the single
// source of truth; everything the dashboard shows is derived from full
// snapshots read here.
type Store struct {
	c *mongo.Collection
}

// New creates a new plantings Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("plantings")}
}

// EnsureIndexes creates indexes for snapshot ordering and leaderboard reads.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "planted_at", Value: 1}},
			Options: options.Index().SetName("idx_plantings_planted_at"),
		},
		{
			Keys:    bson.D{{Key: "user_name", Value: 1}},
			Options: options.Index().SetName("idx_plantings_user"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Create inserts a new planting record and returns its assigned id.
func (s *Store) Create(ctx context.Context, t models.Tree) (primitive.ObjectID, error) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	_, err := s.c.InsertOne(ctx, t)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return t.ID, nil
}

// Delete removes a planting record by id. Deleting an id that no longer
// exists is not an error; the record simply stays gone.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// List returns the full current snapshot, ordered by planting time so a
// given collection state always yields the same sequence.
func (s *Store) List(ctx context.Context) ([]models.Tree, error) {
	opts := options.Find().SetSort(bson.D{{Key: "planted_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	trees := []models.Tree{}
	if err := cur.All(ctx, &trees); err != nil {
		return nil, err
	}
	return trees, nil
}

// Count returns the number of planting records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// Watch opens a change stream over the collection. Any insert or delete, by
// this process or another, produces an event. The caller owns closing the
// stream; standalone mongod deployments without an oplog return an error
// here and the watcher falls back to polling.
func (s *Store) Watch(ctx context.Context) (*mongo.ChangeStream, error) {
	return s.c.Watch(ctx, mongo.Pipeline{})
}

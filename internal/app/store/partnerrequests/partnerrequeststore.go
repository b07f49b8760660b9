// internal/app/store/partnerrequests/partnerrequeststore.go
package partnerrequeststore

import (
	"context"
	"time"

	"github.com/dalemusser/studymate/internal/app/system/dbresult"
	"github.com/dalemusser/studymate/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the partner requests collection.
const Collection = "partnerRequests"

// snapshotPrefix addresses fields inside the embedded partner snapshot.
const snapshotPrefix = "partnerData."

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts a request with a fresh ID and CreatedAt.
func (s *Store) Create(ctx context.Context, r models.PartnerRequest) (models.PartnerRequest, dbresult.Insert, error) {
	r.ID = primitive.NewObjectID()
	r.CreatedAt = time.Now().UTC()

	res, err := s.c.InsertOne(ctx, r)
	if err != nil {
		return models.PartnerRequest{}, dbresult.Insert{}, err
	}
	return r, dbresult.FromInsert(res), nil
}

// ListByUserEmail returns the requests made by email, oldest first.
func (s *Store) ListByUserEmail(ctx context.Context, email string) ([]models.PartnerRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.PartnerRequest{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateSnapshot sets patch fields inside partnerData. partnerId and
// userEmail cannot be reached through it. A missing id yields
// MatchedCount 0; an empty patch does not touch the store.
func (s *Store) UpdateSnapshot(ctx context.Context, id primitive.ObjectID, patch models.PartnerPatch) (dbresult.Update, error) {
	if patch.IsEmpty() {
		return dbresult.NoopUpdate(), nil
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": patch.Fields(snapshotPrefix)})
	if err != nil {
		return dbresult.Update{}, err
	}
	return dbresult.FromUpdate(res), nil
}

// Delete removes a request by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (dbresult.Delete, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dbresult.Delete{}, err
	}
	return dbresult.FromDelete(res), nil
}

// internal/app/store/partners/partnerstore.go
package partnerstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/studymate/internal/app/system/dbresult"
	"github.com/dalemusser/studymate/internal/app/system/search"
	"github.com/dalemusser/studymate/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the partners collection.
const Collection = "partners"

// SortExperience orders a listing by ascending experienceLevel.
const SortExperience = "experience"

var ErrNotFound = errors.New("partner not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// ListFilter narrows List. Search is matched case-insensitively as a literal
// substring of subject. Sort is either SortExperience or empty.
type ListFilter struct {
	Search string
	Sort   string
}

// Create inserts p with a fresh ID, a zero partnerCount, and timestamps.
func (s *Store) Create(ctx context.Context, p models.Partner) (models.Partner, dbresult.Insert, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.PartnerCount = 0
	p.CreatedAt = now
	p.UpdatedAt = &now

	res, err := s.c.InsertOne(ctx, p)
	if err != nil {
		return models.Partner{}, dbresult.Insert{}, err
	}
	return p, dbresult.FromInsert(res), nil
}

// List returns every partner matching f. The result is never nil.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Partner, error) {
	filter := bson.M{}
	if cond := search.ContainsFold(f.Search); cond != nil {
		filter["subject"] = cond
	}

	opts := options.Find()
	if f.Sort == SortExperience {
		opts.SetSort(bson.D{{Key: "experienceLevel", Value: 1}, {Key: "_id", Value: 1}})
	}
	return s.find(ctx, filter, opts)
}

// ListByEmail returns partners whose email equals email exactly.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.Partner, error) {
	return s.find(ctx, bson.M{"email": email})
}

// GetByID returns the partner or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Partner, error) {
	var p models.Partner
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Partner{}, ErrNotFound
	}
	if err != nil {
		return models.Partner{}, err
	}
	return p, nil
}

// FindByID is GetByID for callers that treat a miss as a value: it returns
// (nil, nil) when no partner has id.
func (s *Store) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	p, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update sets the fields present in patch and refreshes updatedAt. There is
// no existence check: a missing id yields MatchedCount 0. An empty patch
// does not touch the store.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, patch models.PartnerPatch) (dbresult.Update, error) {
	if patch.IsEmpty() {
		return dbresult.NoopUpdate(), nil
	}
	set := patch.Fields("")
	set["updatedAt"] = time.Now().UTC()

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return dbresult.Update{}, err
	}
	return dbresult.FromUpdate(res), nil
}

// IncrementPartnerCount adds one to partnerCount. A missing id matches
// nothing and is not an error.
func (s *Store) IncrementPartnerCount(ctx context.Context, id primitive.ObjectID) (dbresult.Update, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"partnerCount": 1}})
	if err != nil {
		return dbresult.Update{}, err
	}
	return dbresult.FromUpdate(res), nil
}

// Delete removes the partner. Requests that reference it are left alone.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (dbresult.Delete, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dbresult.Delete{}, err
	}
	return dbresult.FromDelete(res), nil
}

func (s *Store) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Partner, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Partner{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/studymate/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Calling it more than once on the same request adds to the existing params.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreatePartner inserts a partner profile directly into the partners
// collection and returns it with its generated ID.
func (f *Fixtures) CreatePartner(ctx context.Context, email, subject string, level int) models.Partner {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	p := models.Partner{
		ID:               primitive.NewObjectID(),
		Name:             "Test Partner",
		Subject:          subject,
		StudyMode:        "Online",
		AvailabilityTime: "Evenings",
		Location:         "Test City",
		ExperienceLevel:  level,
		Rating:           4,
		Email:            email,
		CreatedAt:        now,
		UpdatedAt:        &now,
	}

	if _, err := f.db.Collection("partners").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test partner: %v", err)
	}
	return p
}

// CreatePartnerRequest inserts a request that snapshots p for userEmail.
func (f *Fixtures) CreatePartnerRequest(ctx context.Context, p models.Partner, userEmail string) models.PartnerRequest {
	f.t.Helper()

	snap := p
	req := models.PartnerRequest{
		ID:          primitive.NewObjectID(),
		PartnerID:   p.ID.Hex(),
		PartnerData: &snap,
		UserEmail:   userEmail,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := f.db.Collection("partnerRequests").InsertOne(ctx, req); err != nil {
		f.t.Fatalf("failed to create test partner request: %v", err)
	}
	return req
}

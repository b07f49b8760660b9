package connections_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/studymate/internal/app/features/connections"
	errorsfeature "github.com/dalemusser/studymate/internal/app/features/errors"
	"github.com/dalemusser/studymate/internal/app/features/partners"
	"github.com/dalemusser/studymate/internal/app/system/dbgate"
	"github.com/dalemusser/studymate/internal/domain/models"
	"github.com/dalemusser/studymate/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type sendBody struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

func newHandler(gate *dbgate.Gate) *connections.Handler {
	logger := zap.NewNop()
	return connections.NewHandler(gate, errorsfeature.NewErrorLogger(logger), logger)
}

func newReadyHandler(t *testing.T) (*connections.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return newHandler(dbgate.Ready(db)), db
}

func sendRequest(t *testing.T, h *connections.Handler, partnerID, userEmail string) *testutil.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(http.MethodPost, "/partners/"+partnerID+"/request", `{"userEmail":"`+userEmail+`"}`)
	req = testutil.WithChiURLParam(req, "id", partnerID)
	rec := testutil.NewRecorder()
	h.SendRequest(rec, req)
	return rec
}

func findPartner(t *testing.T, db *mongo.Database, id primitive.ObjectID) models.Partner {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	var p models.Partner
	if err := db.Collection("partners").FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		t.Fatalf("find partner: %v", err)
	}
	return p
}

func findRequest(t *testing.T, db *mongo.Database, hexID string) models.PartnerRequest {
	t.Helper()
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		t.Fatalf("requestId %q: %v", hexID, err)
	}
	ctx, cancel := testutil.TestContext()
	defer cancel()
	var r models.PartnerRequest
	if err := db.Collection("partnerRequests").FindOne(ctx, bson.M{"_id": oid}).Decode(&r); err != nil {
		t.Fatalf("find request: %v", err)
	}
	return r
}

func TestSendRequest_IncrementsAndSnapshots(t *testing.T) {
	h, db := newReadyHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := testutil.NewFixtures(t, db).CreatePartner(ctx, "ana@x.com", "Algebra", 2)

	rec := sendRequest(t, h, p.ID.Hex(), "bob@x.com")
	rec.AssertStatus(t, http.StatusOK)

	var got sendBody
	rec.DecodeJSON(t, &got)
	if got.Message != "Partner request sent successfully" {
		t.Errorf("message: got %q", got.Message)
	}

	if n := findPartner(t, db, p.ID).PartnerCount; n != 1 {
		t.Errorf("partnerCount: got %d, want 1", n)
	}

	stored := findRequest(t, db, got.RequestID)
	if stored.PartnerID != p.ID.Hex() {
		t.Errorf("partnerId: got %q, want %q", stored.PartnerID, p.ID.Hex())
	}
	if stored.UserEmail != "bob@x.com" {
		t.Errorf("userEmail: got %q", stored.UserEmail)
	}
	if stored.PartnerData == nil {
		t.Fatal("expected partner snapshot")
	}
	if stored.PartnerData.PartnerCount < 1 {
		t.Errorf("snapshot partnerCount: got %d, want >= 1", stored.PartnerData.PartnerCount)
	}
	if stored.PartnerData.Subject != "Algebra" {
		t.Errorf("snapshot subject: got %q", stored.PartnerData.Subject)
	}
}

func TestSendRequest_RepeatedRequestsCount(t *testing.T) {
	h, db := newReadyHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := testutil.NewFixtures(t, db).CreatePartner(ctx, "ana@x.com", "Algebra", 2)

	for i := 0; i < 3; i++ {
		sendRequest(t, h, p.ID.Hex(), "bob@x.com").AssertStatus(t, http.StatusOK)
	}

	if n := findPartner(t, db, p.ID).PartnerCount; n != 3 {
		t.Errorf("partnerCount: got %d, want 3", n)
	}
	count, err := db.Collection("partnerRequests").CountDocuments(ctx, bson.M{"partnerId": p.ID.Hex()})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("requests: got %d, want 3", count)
	}
}

func TestSendRequest_MissingPartnerStoresNullSnapshot(t *testing.T) {
	h, db := newReadyHandler(t)

	id := primitive.NewObjectID().Hex()
	rec := sendRequest(t, h, id, "bob@x.com")
	rec.AssertStatus(t, http.StatusOK)

	var got sendBody
	rec.DecodeJSON(t, &got)
	stored := findRequest(t, db, got.RequestID)
	if stored.PartnerData != nil {
		t.Errorf("expected null partnerData, got %+v", stored.PartnerData)
	}
	if stored.PartnerID != id {
		t.Errorf("partnerId: got %q, want %q", stored.PartnerID, id)
	}
}

func TestSendRequest_Validation(t *testing.T) {
	h := newHandler(dbgate.New())

	tests := []struct {
		name string
		id   string
		body string
		code string
	}{
		{"undefined id", "undefined", `{"userEmail":"bob@x.com"}`, "invalid_id"},
		{"empty id", "", `{"userEmail":"bob@x.com"}`, "invalid_id"},
		{"missing email", primitive.NewObjectID().Hex(), `{}`, "invalid_input"},
		{"bad email", primitive.NewObjectID().Hex(), `{"userEmail":"bob"}`, "invalid_input"},
		{"unknown field", primitive.NewObjectID().Hex(), `{"userEmail":"bob@x.com","admin":true}`, "invalid_input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(http.MethodPost, "/partners/x/request", tt.body)
			req = testutil.WithChiURLParam(req, "id", tt.id)
			rec := testutil.NewRecorder()
			h.SendRequest(rec, req)

			rec.AssertStatus(t, http.StatusBadRequest)
			var got errorBody
			rec.DecodeJSON(t, &got)
			if got.Error != tt.code {
				t.Errorf("error: got %q, want %q", got.Error, tt.code)
			}
		})
	}
}

func TestSendRequest_NotReady(t *testing.T) {
	h := newHandler(dbgate.New())

	rec := sendRequest(t, h, primitive.NewObjectID().Hex(), "bob@x.com")
	rec.AssertStatus(t, http.StatusInternalServerError)

	var got errorBody
	rec.DecodeJSON(t, &got)
	if got.Error != "store_unavailable" || got.Message != "Database not connected" {
		t.Errorf("got %+v", got)
	}
}

func TestListMine(t *testing.T) {
	h, db := newReadyHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	p := fx.CreatePartner(ctx, "ana@x.com", "Algebra", 2)
	first := fx.CreatePartnerRequest(ctx, p, "bob@x.com")
	second := fx.CreatePartnerRequest(ctx, p, "bob@x.com")
	fx.CreatePartnerRequest(ctx, p, "carol@x.com")

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/my-connections/bob@x.com"), "key", "bob@x.com")
	rec := testutil.NewRecorder()
	h.ListMine(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var got []models.PartnerRequest
	rec.DecodeJSON(t, &got)
	if len(got) != 2 {
		t.Fatalf("got %d requests, want 2", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("order: got %s, %s", got[0].ID.Hex(), got[1].ID.Hex())
	}
}

func TestListMine_NoneIsEmptyArray(t *testing.T) {
	h, _ := newReadyHandler(t)

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/my-connections/nobody@x.com"), "key", "nobody@x.com")
	rec := testutil.NewRecorder()
	h.ListMine(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body: got %q, want []", body)
	}
}

func TestUpdate_TouchesOnlySnapshot(t *testing.T) {
	h, db := newReadyHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	p := fx.CreatePartner(ctx, "ana@x.com", "Algebra", 2)
	r := fx.CreatePartnerRequest(ctx, p, "bob@x.com")

	req := testutil.NewJSONRequest(http.MethodPut, "/my-connections/"+r.ID.Hex(), `{"location":"Porto"}`)
	req = testutil.WithChiURLParam(req, "key", r.ID.Hex())
	rec := testutil.NewRecorder()
	h.Update(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var got struct {
		Message string `json:"message"`
		Result  struct {
			MatchedCount int64 `json:"matchedCount"`
		} `json:"result"`
	}
	rec.DecodeJSON(t, &got)
	if got.Message != "Connection updated" || got.Result.MatchedCount != 1 {
		t.Errorf("got %+v", got)
	}

	stored := findRequest(t, db, r.ID.Hex())
	if stored.PartnerData == nil || stored.PartnerData.Location != "Porto" {
		t.Errorf("snapshot location not updated: %+v", stored.PartnerData)
	}
	if stored.UserEmail != "bob@x.com" || stored.PartnerID != p.ID.Hex() {
		t.Errorf("top-level fields changed: %+v", stored)
	}

	// The live partner is untouched.
	if loc := findPartner(t, db, p.ID).Location; loc != p.Location {
		t.Errorf("partner location: got %q, want %q", loc, p.Location)
	}
}

func TestUpdate_RejectsTopLevelFields(t *testing.T) {
	h := newHandler(dbgate.New())

	id := primitive.NewObjectID().Hex()
	req := testutil.WithChiURLParam(testutil.NewJSONRequest(http.MethodPut, "/my-connections/"+id, `{"userEmail":"eve@x.com"}`), "key", id)
	rec := testutil.NewRecorder()
	h.Update(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestDelete_MissingIsZeroCount(t *testing.T) {
	h, _ := newReadyHandler(t)

	id := primitive.NewObjectID().Hex()
	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodDelete, "/my-connections/"+id), "key", id)
	rec := testutil.NewRecorder()
	h.Delete(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var got struct {
		Message string `json:"message"`
		Result  struct {
			DeletedCount int64 `json:"deletedCount"`
		} `json:"result"`
	}
	rec.DecodeJSON(t, &got)
	if got.Message != "Connection deleted" || got.Result.DeletedCount != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestDelete_InvalidID(t *testing.T) {
	h := newHandler(dbgate.New())

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodDelete, "/my-connections/undefined"), "key", "undefined")
	rec := testutil.NewRecorder()
	h.Delete(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

// A partner is created, found by search, requested, listed by the requester,
// then deleted. The request outlives the partner with its snapshot intact.
func TestScenario_RequestOutlivesPartner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gate := dbgate.Ready(db)
	logger := zap.NewNop()
	errLog := errorsfeature.NewErrorLogger(logger)
	ph := partners.NewHandler(gate, errLog, logger)
	ch := connections.NewHandler(gate, errLog, logger)

	// Create
	rec := testutil.NewRecorder()
	ph.Create(rec, testutil.NewJSONRequest(http.MethodPost, "/partners",
		`{"name":"Ana","subject":"Algebra","studyMode":"Online","experienceLevel":2,"email":"ana@x.com"}`))
	rec.AssertStatus(t, http.StatusCreated)
	var created struct {
		InsertedID string `json:"insertedId"`
	}
	rec.DecodeJSON(t, &created)

	// Search
	rec = testutil.NewRecorder()
	ph.List(rec, testutil.NewRequest(http.MethodGet, "/partners?search=alg"))
	rec.AssertStatus(t, http.StatusOK)
	var found []models.Partner
	rec.DecodeJSON(t, &found)
	if len(found) != 1 || found[0].ID.Hex() != created.InsertedID {
		t.Fatalf("search: got %+v", found)
	}

	// Request
	rec = sendRequest(t, ch, created.InsertedID, "bob@x.com")
	rec.AssertStatus(t, http.StatusOK)
	var sent sendBody
	rec.DecodeJSON(t, &sent)

	// List connections
	rec = testutil.NewRecorder()
	ch.ListMine(rec, testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/my-connections/bob@x.com"), "key", "bob@x.com"))
	rec.AssertStatus(t, http.StatusOK)
	var conns []models.PartnerRequest
	rec.DecodeJSON(t, &conns)
	if len(conns) != 1 || conns[0].ID.Hex() != sent.RequestID {
		t.Fatalf("connections: got %+v", conns)
	}
	if conns[0].PartnerData == nil || conns[0].PartnerData.PartnerCount != 1 {
		t.Fatalf("snapshot: got %+v", conns[0].PartnerData)
	}

	// Delete partner
	rec = testutil.NewRecorder()
	ph.Delete(rec, testutil.WithChiURLParam(testutil.NewRequest(http.MethodDelete, "/partners/"+created.InsertedID), "id", created.InsertedID))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	ph.Show(rec, testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/partners/"+created.InsertedID), "id", created.InsertedID))
	rec.AssertStatus(t, http.StatusNotFound)

	// Stale snapshot remains
	stored := findRequest(t, db, sent.RequestID)
	if stored.PartnerData == nil || stored.PartnerData.Subject != "Algebra" {
		t.Errorf("snapshot after partner delete: got %+v", stored.PartnerData)
	}
}

package home_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/studymate/internal/app/features/home"
	"github.com/dalemusser/studymate/internal/testutil"
	"go.uber.org/zap"
)

func TestServeRoot(t *testing.T) {
	h := home.NewHandler(zap.NewNop())

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()

	h.ServeRoot(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	if rec.Body.String() != home.LivenessText {
		t.Errorf("body = %q, want %q", rec.Body.String(), home.LivenessText)
	}
}

func TestRoutes(t *testing.T) {
	router := home.Routes(home.NewHandler(zap.NewNop()))

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "running")
}

package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/studymate/internal/app/system/dbgate"
	"github.com/dalemusser/studymate/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Gate *dbgate.Gate
	Log  *zap.Logger
}

// NewHandler constructs a health Handler with the database gate and logger.
func NewHandler(gate *dbgate.Gate, logger *zap.Logger) *Handler {
	return &Handler{
		Gate: gate,
		Log:  logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected" }
//
// Before startup has finished: 503 and
//
//	{ "status":"error", "database":"not_ready", "message":"Database not connected" }
//
// On ping failure: 503 with database "disconnected". The driver error is
// logged, not returned.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	db, err := h.Gate.DB()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:   "error",
			Database: "not_ready",
			Message:  "Database not connected",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:   "error",
			Database: "disconnected",
			Message:  "Database unavailable",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:   "ok",
		Database: "connected",
	})
}

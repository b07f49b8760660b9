// internal/app/features/connections/mine.go
package connections

import (
	"context"
	"net/http"

	partnerrequeststore "github.com/dalemusser/studymate/internal/app/store/partnerrequests"
	"github.com/dalemusser/studymate/internal/app/system/dbresult"
	"github.com/dalemusser/studymate/internal/app/system/jsonresp"
	"github.com/dalemusser/studymate/internal/app/system/limits"
	"github.com/dalemusser/studymate/internal/app/system/objectid"
	"github.com/dalemusser/studymate/internal/app/system/partnerinput"
	"github.com/dalemusser/studymate/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const invalidRequestIDMsg = "Invalid request ID"

type updateResponse struct {
	Message string          `json:"message"`
	Result  dbresult.Update `json:"result"`
}

type deleteResponse struct {
	Message string          `json:"message"`
	Result  dbresult.Delete `json:"result"`
}

// ListMine handles GET /my-connections/{email}.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "key")

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := partnerrequeststore.New(db).ListByUserEmail(ctx, email)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error fetching connections")
		return
	}
	jsonresp.OK(w, out)
}

// Update handles PUT /my-connections/{requestId}. Body fields are applied
// to the embedded partner snapshot only.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	oid, err := objectid.Parse(chi.URLParam(r, "key"), invalidRequestIDMsg)
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)
	patch, err := partnerinput.DecodePatch(r.Body)
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := partnerrequeststore.New(db).UpdateSnapshot(ctx, oid, patch)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error updating connection")
		return
	}
	jsonresp.OK(w, updateResponse{Message: "Connection updated", Result: res})
}

// Delete handles DELETE /my-connections/{requestId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	oid, err := objectid.Parse(chi.URLParam(r, "key"), invalidRequestIDMsg)
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := partnerrequeststore.New(db).Delete(ctx, oid)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error deleting connection")
		return
	}
	if res.DeletedCount > 0 {
		h.Log.Info("connection deleted", zap.String("request_id", oid.Hex()))
	}
	jsonresp.OK(w, deleteResponse{Message: "Connection deleted", Result: res})
}

// internal/app/features/partners/crud.go
package partners

import (
	"context"
	"errors"
	"net/http"

	partnerstore "github.com/dalemusser/studymate/internal/app/store/partners"
	"github.com/dalemusser/studymate/internal/app/system/apierr"
	"github.com/dalemusser/studymate/internal/app/system/jsonresp"
	"github.com/dalemusser/studymate/internal/app/system/limits"
	"github.com/dalemusser/studymate/internal/app/system/objectid"
	"github.com/dalemusser/studymate/internal/app/system/partnerinput"
	"github.com/dalemusser/studymate/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const invalidIDMsg = "Invalid partner ID"

// Create handles POST /partners.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)
	in, err := partnerinput.DecodeCreate(r.Body)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Invalid partner profile")
		return
	}

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, res, err := partnerstore.New(db).Create(ctx, in)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error creating partner profile")
		return
	}

	h.Log.Info("partner profile created",
		zap.String("partner_id", p.ID.Hex()),
		zap.String("email", p.Email))

	jsonresp.Created(w, createResponse{
		Message:    "Partner profile created",
		InsertedID: p.ID,
		Result:     res,
	})
}

// List handles GET /partners?search=&sort=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := partnerstore.ListFilter{
		Search: query.Get(r, "search"),
		Sort:   query.Get(r, "sort"),
	}

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := partnerstore.New(db).List(ctx, filter)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error fetching partners")
		return
	}
	jsonresp.OK(w, out)
}

// Show handles GET /partners/{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	// The ID is checked before the store is consulted.
	oid, err := objectid.Parse(chi.URLParam(r, "id"), invalidIDMsg)
	if err != nil {
		h.ErrLog.Write(w, r, err, invalidIDMsg)
		return
	}

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := partnerstore.New(db).GetByID(ctx, oid)
	if errors.Is(err, partnerstore.ErrNotFound) {
		h.ErrLog.Write(w, r, apierr.New(apierr.NotFound, "Partner not found", err), "")
		return
	}
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error fetching partner")
		return
	}
	jsonresp.OK(w, p)
}

// Update handles PUT /partners/{id}. Only the fields in the body change.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	oid, err := objectid.Parse(chi.URLParam(r, "id"), invalidIDMsg)
	if err != nil {
		h.ErrLog.Write(w, r, err, invalidIDMsg)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)
	patch, err := partnerinput.DecodePatch(r.Body)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Invalid partner update")
		return
	}

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := partnerstore.New(db).Update(ctx, oid, patch)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error updating partner")
		return
	}
	jsonresp.OK(w, updateResponse{Message: "Partner updated", Result: res})
}

// Delete handles DELETE /partners/{id}. Requests that reference the partner
// keep their snapshot.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	oid, err := objectid.Parse(chi.URLParam(r, "id"), invalidIDMsg)
	if err != nil {
		h.ErrLog.Write(w, r, err, invalidIDMsg)
		return
	}

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := partnerstore.New(db).Delete(ctx, oid)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error deleting partner")
		return
	}
	if res.DeletedCount > 0 {
		h.Log.Info("partner profile deleted", zap.String("partner_id", oid.Hex()))
	}
	jsonresp.OK(w, deleteResponse{Message: "Partner deleted", Result: res})
}

// ListMine handles GET /my-partners/{email}.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := partnerstore.New(db).ListByEmail(ctx, email)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error fetching partners")
		return
	}
	jsonresp.OK(w, out)
}

// internal/app/features/connections/send.go
package connections

import (
	"context"
	"fmt"
	"net/http"

	partnerrequeststore "github.com/dalemusser/studymate/internal/app/store/partnerrequests"
	partnerstore "github.com/dalemusser/studymate/internal/app/store/partners"
	"github.com/dalemusser/studymate/internal/app/system/jsonresp"
	"github.com/dalemusser/studymate/internal/app/system/limits"
	"github.com/dalemusser/studymate/internal/app/system/objectid"
	"github.com/dalemusser/studymate/internal/app/system/partnerinput"
	"github.com/dalemusser/studymate/internal/app/system/timeouts"
	"github.com/dalemusser/studymate/internal/app/system/txn"
	"github.com/dalemusser/studymate/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type sendResponse struct {
	Message   string             `json:"message"`
	RequestID primitive.ObjectID `json:"requestId"`
}

// SendRequest handles POST /partners/{id}/request with body {"userEmail"}.
func (h *Handler) SendRequest(w http.ResponseWriter, r *http.Request) {
	partnerID, err := objectid.Parse(chi.URLParam(r, "id"), "Invalid partner ID")
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)
	in, err := partnerinput.DecodeSendRequest(r.Body)
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	db, err := h.Gate.DB()
	if err != nil {
		h.ErrLog.Write(w, r, err, "")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "send partner request")
	defer cancel()

	req, err := sendRequest(ctx, db, h.Log, partnerID, in.UserEmail)
	if err != nil {
		h.ErrLog.Write(w, r, err, "Error sending partner request")
		return
	}

	h.Log.Info("partner request sent",
		zap.String("request_id", req.ID.Hex()),
		zap.String("partner_id", req.PartnerID),
		zap.Bool("partner_found", req.PartnerData != nil))

	jsonresp.OK(w, sendResponse{
		Message:   "Partner request sent successfully",
		RequestID: req.ID,
	})
}

// sendRequest bumps the partner's partnerCount and records a request that
// embeds the partner as it looks after the increment.
//
// Both writes share a transaction when the server supports one. On a
// standalone server they run back to back: a failure after the increment
// leaves the count raised with no request, and concurrent senders may each
// snapshot the other's increment. A missing partner is not an error; the
// increment matches nothing and the snapshot is nil.
func sendRequest(ctx context.Context, db *mongo.Database, log *zap.Logger, partnerID primitive.ObjectID, userEmail string) (models.PartnerRequest, error) {
	partners := partnerstore.New(db)
	requests := partnerrequeststore.New(db)

	var created models.PartnerRequest
	err := txn.Run(ctx, db, log, func(ctx context.Context) error {
		if _, err := partners.IncrementPartnerCount(ctx, partnerID); err != nil {
			return fmt.Errorf("increment partnerCount: %w", err)
		}
		snap, err := partners.FindByID(ctx, partnerID)
		if err != nil {
			return fmt.Errorf("snapshot partner: %w", err)
		}
		created, _, err = requests.Create(ctx, models.PartnerRequest{
			PartnerID:   partnerID.Hex(),
			PartnerData: snap,
			UserEmail:   userEmail,
		})
		if err != nil {
			return fmt.Errorf("insert partner request: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.PartnerRequest{}, err
	}
	return created, nil
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartnerRequest records a user's request to connect with a partner.
//
// PartnerID is a weak reference: the partner may be edited or deleted later
// and nothing cascades. PartnerData is a copy of the partner taken when the
// request was made and is never synchronized afterwards. It is nil when the
// referenced partner did not exist.
type PartnerRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PartnerID   string             `bson:"partnerId" json:"partnerId"`
	PartnerData *Partner           `bson:"partnerData" json:"partnerData"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

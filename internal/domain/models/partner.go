package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partner is a study-partner profile stored in the "partners" collection.
// Field names are camelCase on the wire and in the database so documents
// written by earlier clients decode unchanged.
type Partner struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	ProfileImage string `bson:"profileImage,omitempty" json:"profileImage,omitempty"`

	Subject          string `bson:"subject" json:"subject"`
	StudyMode        string `bson:"studyMode,omitempty" json:"studyMode,omitempty"` // e.g. "Online", "Offline"
	AvailabilityTime string `bson:"availabilityTime,omitempty" json:"availabilityTime,omitempty"`
	Location         string `bson:"location,omitempty" json:"location,omitempty"`

	ExperienceLevel int     `bson:"experienceLevel" json:"experienceLevel"` // ordinal, higher is more experienced
	Rating          float64 `bson:"rating" json:"rating"`

	Email string `bson:"email" json:"email"`

	// PartnerCount is only ever changed by $inc when a request is sent.
	PartnerCount int `bson:"partnerCount" json:"partnerCount"`

	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

package models

import "go.mongodb.org/mongo-driver/bson"

// PartnerPatch is a partial update of a Partner. Nil fields are left
// untouched; there is no way to remove a field, only to set it.
type PartnerPatch struct {
	Name             *string  `json:"name,omitempty"`
	ProfileImage     *string  `json:"profileImage,omitempty"`
	Subject          *string  `json:"subject,omitempty"`
	StudyMode        *string  `json:"studyMode,omitempty"`
	AvailabilityTime *string  `json:"availabilityTime,omitempty"`
	Location         *string  `json:"location,omitempty"`
	ExperienceLevel  *int     `json:"experienceLevel,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	Email            *string  `json:"email,omitempty"`
}

// Fields returns the set fields keyed by their document field name.
// prefix is prepended to every key ("partnerData." targets an embedded
// snapshot); pass "" for top-level fields.
func (p PartnerPatch) Fields(prefix string) bson.M {
	out := bson.M{}
	put := func(key string, v any) {
		out[prefix+key] = v
	}
	if p.Name != nil {
		put("name", *p.Name)
	}
	if p.ProfileImage != nil {
		put("profileImage", *p.ProfileImage)
	}
	if p.Subject != nil {
		put("subject", *p.Subject)
	}
	if p.StudyMode != nil {
		put("studyMode", *p.StudyMode)
	}
	if p.AvailabilityTime != nil {
		put("availabilityTime", *p.AvailabilityTime)
	}
	if p.Location != nil {
		put("location", *p.Location)
	}
	if p.ExperienceLevel != nil {
		put("experienceLevel", *p.ExperienceLevel)
	}
	if p.Rating != nil {
		put("rating", *p.Rating)
	}
	if p.Email != nil {
		put("email", *p.Email)
	}
	return out
}

// IsEmpty reports whether the patch sets no fields.
func (p PartnerPatch) IsEmpty() bool {
	return len(p.Fields("")) == 0
}

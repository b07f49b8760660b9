// Package partnerinput is the schema boundary for partner request bodies.
//
// Bodies are decoded into tagged structs with unknown fields rejected,
// free-text fields are stripped of markup, and the few constraints the
// service relies on are checked. Failures come back as apierr InvalidInput
// errors with a message that names the offending field.
package partnerinput

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dalemusser/studymate/internal/app/system/apierr"
	"github.com/dalemusser/studymate/internal/app/system/htmlsanitize"
	"github.com/dalemusser/studymate/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/dalemusser/waffle/toolkit/validate"
)

// MaxRating is the top of the rating scale.
const MaxRating = 5.0

// Create is the body of POST /partners.
type Create struct {
	Name             string  `json:"name"`
	ProfileImage     string  `json:"profileImage"`
	Subject          string  `json:"subject"`
	StudyMode        string  `json:"studyMode"`
	AvailabilityTime string  `json:"availabilityTime"`
	Location         string  `json:"location"`
	ExperienceLevel  int     `json:"experienceLevel"`
	Rating           float64 `json:"rating"`
	Email            string  `json:"email"`
}

// SendRequest is the body of POST /partners/{id}/request.
type SendRequest struct {
	UserEmail string `json:"userEmail"`
}

// DecodeCreate reads and validates a new partner profile.
// The returned Partner has no ID or timestamps yet.
func DecodeCreate(r io.Reader) (models.Partner, error) {
	var in Create
	if err := decode(r, &in); err != nil {
		return models.Partner{}, err
	}

	p := models.Partner{
		Name:             htmlsanitize.PlainText(in.Name),
		ProfileImage:     strings.TrimSpace(in.ProfileImage),
		Subject:          htmlsanitize.PlainText(in.Subject),
		StudyMode:        htmlsanitize.PlainText(in.StudyMode),
		AvailabilityTime: htmlsanitize.PlainText(in.AvailabilityTime),
		Location:         htmlsanitize.PlainText(in.Location),
		ExperienceLevel:  in.ExperienceLevel,
		Rating:           in.Rating,
		Email:            strings.TrimSpace(in.Email),
	}

	switch {
	case p.Email == "":
		return models.Partner{}, apierr.Invalid("email is required", nil)
	case !validate.SimpleEmailValid(p.Email):
		return models.Partner{}, apierr.Invalid("email is not a valid address", nil)
	case p.Subject == "":
		return models.Partner{}, apierr.Invalid("subject is required", nil)
	}
	if err := checkCommon(p.ProfileImage, p.ExperienceLevel, p.Rating); err != nil {
		return models.Partner{}, err
	}
	return p, nil
}

// DecodePatch reads and validates a partial partner update. Only fields
// present in the body are set in the result.
func DecodePatch(r io.Reader) (models.PartnerPatch, error) {
	var p models.PartnerPatch
	if err := decode(r, &p); err != nil {
		return models.PartnerPatch{}, err
	}

	clean := func(s *string) {
		if s != nil {
			*s = htmlsanitize.PlainText(*s)
		}
	}
	clean(p.Name)
	clean(p.Subject)
	clean(p.StudyMode)
	clean(p.AvailabilityTime)
	clean(p.Location)
	if p.ProfileImage != nil {
		*p.ProfileImage = strings.TrimSpace(*p.ProfileImage)
	}
	if p.Email != nil {
		*p.Email = strings.TrimSpace(*p.Email)
		if !validate.SimpleEmailValid(*p.Email) {
			return models.PartnerPatch{}, apierr.Invalid("email is not a valid address", nil)
		}
	}
	if p.Subject != nil && *p.Subject == "" {
		return models.PartnerPatch{}, apierr.Invalid("subject cannot be blank", nil)
	}

	img, level, rating := "", 0, 0.0
	if p.ProfileImage != nil {
		img = *p.ProfileImage
	}
	if p.ExperienceLevel != nil {
		level = *p.ExperienceLevel
	}
	if p.Rating != nil {
		rating = *p.Rating
	}
	if err := checkCommon(img, level, rating); err != nil {
		return models.PartnerPatch{}, err
	}
	return p, nil
}

// DecodeSendRequest reads the requester email for a partner request.
func DecodeSendRequest(r io.Reader) (SendRequest, error) {
	var in SendRequest
	if err := decode(r, &in); err != nil {
		return SendRequest{}, err
	}
	in.UserEmail = strings.TrimSpace(in.UserEmail)
	if in.UserEmail == "" {
		return SendRequest{}, apierr.Invalid("userEmail is required", nil)
	}
	if !validate.SimpleEmailValid(in.UserEmail) {
		return SendRequest{}, apierr.Invalid("userEmail is not a valid address", nil)
	}
	return in, nil
}

func checkCommon(profileImage string, level int, rating float64) error {
	if profileImage != "" && !urlutil.IsValidAbsHTTPURL(profileImage) {
		return apierr.Invalid("profileImage must be a valid http(s) URL", nil)
	}
	if level < 0 {
		return apierr.Invalid("experienceLevel cannot be negative", nil)
	}
	if rating < 0 || rating > MaxRating {
		return apierr.Invalid(fmt.Sprintf("rating must be between 0 and %g", MaxRating), nil)
	}
	return nil
}

func decode(r io.Reader, dst any) error {
	if r == nil {
		return apierr.Invalid("request body is required", nil)
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apierr.Invalid("request body is required", err)
		}
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return apierr.Invalid(fmt.Sprintf("request body exceeds %d bytes", tooBig.Limit), err)
		}
		var field string
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			field = ute.Field
		}
		if field != "" {
			return apierr.Invalid("invalid value for "+field, err)
		}
		if strings.HasPrefix(err.Error(), "json: unknown field ") {
			return apierr.Invalid(strings.TrimPrefix(err.Error(), "json: "), err)
		}
		return apierr.Invalid("request body must be a JSON object", err)
	}
	if dec.More() {
		return apierr.Invalid("request body must contain a single JSON object", nil)
	}
	return nil
}

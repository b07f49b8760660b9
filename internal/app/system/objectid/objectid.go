// Package objectid parses document identifiers taken from URL paths.
package objectid

import (
	"strings"

	"github.com/dalemusser/studymate/internal/app/system/apierr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parse converts a path parameter to an ObjectID. Empty input, the literal
// "undefined" that browser clients send for an unset variable, and anything
// that is not 24 hex characters all fail with an apierr InvalidID error
// carrying msg.
func Parse(raw, msg string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "undefined" {
		return primitive.NilObjectID, apierr.InvalidIDf("%s", msg)
	}
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apierr.New(apierr.InvalidID, msg, err)
	}
	return oid, nil
}

package objectid

import (
	"errors"
	"testing"

	"github.com/dalemusser/studymate/internal/app/system/apierr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParse(t *testing.T) {
	valid := primitive.NewObjectID()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"empty", "", true},
		{"blank", "   ", true},
		{"undefined", "undefined", true},
		{"too short", "abc123", true},
		{"not hex", "zzzzzzzzzzzzzzzzzzzzzzzz", true},
		{"valid", valid.Hex(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw, "Invalid partner ID")
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Parse(%q) failed: %v", tt.raw, err)
				}
				if got != valid {
					t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, valid)
				}
				return
			}
			var ae *apierr.Error
			if !errors.As(err, &ae) || ae.Kind != apierr.InvalidID {
				t.Errorf("Parse(%q) error = %v, want InvalidID", tt.raw, err)
			}
			if ae != nil && ae.Message != "Invalid partner ID" {
				t.Errorf("Message = %q, want %q", ae.Message, "Invalid partner ID")
			}
		})
	}
}

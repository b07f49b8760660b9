package validators

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestCommandErrorClassification(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		namespaceExists bool
		unsupported     bool
	}{
		{"nil", nil, false, false},
		{"namespace code", mongo.CommandError{Code: codeNamespaceExists, Message: "x"}, true, false},
		{"namespace text", errors.New("Collection already exists. NS: db.partners"), true, false},
		{"no such command code", mongo.CommandError{Code: codeCommandNotFound, Message: "x"}, false, true},
		{"not supported code", mongo.CommandError{Code: codeCommandNotSupport, Message: "x"}, false, true},
		{"not implemented text", fmt.Errorf("collMod: %w", errors.New("Feature not implemented")), false, true},
		{"other command error", mongo.CommandError{Code: 2, Message: "BadValue"}, false, false},
		{"plain error", errors.New("connection reset"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNamespaceExists(tt.err); got != tt.namespaceExists {
				t.Errorf("isNamespaceExists(%v) = %v, want %v", tt.err, got, tt.namespaceExists)
			}
			if got := isUnsupported(tt.err); got != tt.unsupported {
				t.Errorf("isUnsupported(%v) = %v, want %v", tt.err, got, tt.unsupported)
			}
		})
	}
}

package txn_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dalemusser/studymate/internal/app/system/txn"
	"github.com/dalemusser/studymate/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func TestIsNotSupported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("connection reset by peer"), false},
		{"illegal operation code", mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member or mongos"}, true},
		{"legacy code", mongo.CommandError{Code: 51}, true},
		{"not supported in transaction code", mongo.CommandError{Code: 263}, true},
		{"unrelated command code", mongo.CommandError{Code: 11000, Message: "E11000 duplicate key"}, false},
		{"wrapped command error", fmt.Errorf("increment partnerCount: %w", mongo.CommandError{Code: 20}), true},
		{"two keywords", errors.New("Transaction numbers require a REPLICA SET"), true},
		{"session keywords", errors.New("session operations are not supported on this server"), true},
		{"single keyword", errors.New("transaction aborted"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := txn.IsNotSupported(tt.err); got != tt.want {
				t.Errorf("IsNotSupported(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRun_AppliesWrites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coll := db.Collection("txn_writes")
	// Collections cannot be created inside a transaction on older servers.
	if _, err := coll.InsertOne(ctx, bson.M{"seed": true}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := txn.Run(ctx, db, zap.NewNop(), func(ctx context.Context) error {
		if _, err := coll.InsertOne(ctx, bson.M{"step": 1}); err != nil {
			return err
		}
		_, err := coll.InsertOne(ctx, bson.M{"step": 2})
		return err
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	n, err := coll.CountDocuments(ctx, bson.M{"step": bson.M{"$exists": true}})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d documents, want 2", n)
	}
}

func TestRun_ReturnsFnError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	boom := errors.New("snapshot failed")
	err := txn.Run(ctx, db, nil, func(ctx context.Context) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want %v", err, boom)
	}
}

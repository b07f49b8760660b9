// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Server error codes the reconciliation treats as benign.
const (
	codeNamespaceExists   = 48
	codeCommandNotFound   = 59
	codeCommandNotSupport = 115
)

type collectionSchema struct {
	name   string
	schema bson.M
}

func schemas() []collectionSchema {
	return []collectionSchema{
		{name: "partners", schema: partnersSchema()},
		{name: "partnerRequests", schema: partnerRequestsSchema()},
	}
}

// EnsureAll makes sure the partners and partnerRequests collections exist
// and attaches their JSON-Schema validators. Servers without collMod
// support (some DocumentDB versions) keep the collection and skip the
// validator. Problems are joined so one startup error lists all of them.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	var problems []string

	for _, cs := range schemas() {
		log := logger.With(zap.String("collection", cs.name))
		if err := ensureCollection(ctx, db, cs.name, log); err != nil {
			problems = append(problems, cs.name+": "+err.Error())
			continue
		}
		if err := applyValidator(ctx, db, cs.name, cs.schema); err != nil {
			if isUnsupported(err) {
				log.Info("validator skipped, server does not support collMod")
				continue
			}
			problems = append(problems, cs.name+": "+err.Error())
			continue
		}
		log.Info("validator applied")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureCollection creates name unless it is already listed. A listing
// failure falls through to CreateCollection, which tolerates a concurrent
// creator.
func ensureCollection(ctx context.Context, db *mongo.Database, name string, log *zap.Logger) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err == nil && len(names) > 0 {
		log.Debug("collection present")
		return nil
	}
	if err != nil {
		log.Warn("listing collections failed, creating directly", zap.Error(err))
	}

	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExists(err) {
			log.Debug("collection created concurrently")
			return nil
		}
		log.Warn("create collection failed", zap.Error(err))
		return err
	}
	log.Info("collection created")
	return nil
}

// applyValidator replaces the collection's validator. Level "moderate"
// leaves existing documents that predate the schema writable.
func applyValidator(ctx context.Context, db *mongo.Database, name string, schema bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: schema},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	return db.RunCommand(ctx, cmd).Err()
}

func isNamespaceExists(err error) bool {
	return matchesCommandError(err, []int32{codeNamespaceExists}, "already exists", "namespace exists")
}

func isUnsupported(err error) bool {
	return matchesCommandError(err, []int32{codeCommandNotFound, codeCommandNotSupport},
		"no such command", "not implemented", "not supported")
}

// matchesCommandError reports whether err carries one of codes or, for
// drivers and proxies that drop the code, mentions one of phrases.
func matchesCommandError(err error, codes []int32, phrases ...string) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		for _, c := range codes {
			if ce.Code == c {
				return true
			}
		}
	}
	msg := strings.ToLower(err.Error())
	for _, p := range phrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

/* ------------------------- JSON-Schema docs ---------------------- */

// Only the fields the service itself writes are typed. Documents from older
// clients may carry extra fields, so additionalProperties stays open.

func partnersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"email", "subject"},
			"properties": bson.M{
				"email":            bson.M{"bsonType": "string"},
				"subject":          bson.M{"bsonType": "string"},
				"name":             bson.M{"bsonType": "string"},
				"profileImage":     bson.M{"bsonType": "string"},
				"studyMode":        bson.M{"bsonType": "string"},
				"availabilityTime": bson.M{"bsonType": "string"},
				"location":         bson.M{"bsonType": "string"},
				"experienceLevel":  bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"rating":           bson.M{"bsonType": bson.A{"double", "int", "long"}, "minimum": 0, "maximum": 5},
				"partnerCount":     bson.M{"bsonType": bson.A{"int", "long"}},
				"createdAt":        bson.M{"bsonType": "date"},
				"updatedAt":        bson.M{"bsonType": bson.A{"date", "null"}},
			},
		},
	}
}

func partnerRequestsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"partnerId", "userEmail"},
			"properties": bson.M{
				"partnerId":   bson.M{"bsonType": "string"},
				"userEmail":   bson.M{"bsonType": "string"},
				"partnerData": bson.M{"bsonType": bson.A{"object", "null"}},
				"createdAt":   bson.M{"bsonType": "date"},
			},
		},
	}
}

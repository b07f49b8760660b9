// Package txn runs a group of store calls inside a MongoDB transaction when
// the deployment supports one.
//
// Standalone servers reject transactions. On those, Run logs a warning and
// executes fn without a session, so the calls inside fn are applied one by one
// and a failure part-way through leaves the earlier writes in place.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Server error codes meaning "no transactions here":
// 20 IllegalOperation, 51 (legacy), 263 OperationNotSupportedInTransaction.
var notSupportedCodes = map[int32]bool{20: true, 51: true, 263: true}

var notSupportedWords = []string{
	"transaction",
	"replica set",
	"session",
	"not supported",
	"illegal operation",
}

// IsNotSupported reports whether err means the server cannot run
// multi-document transactions.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		if notSupportedCodes[ce.Code] {
			return true
		}
	}
	s := strings.ToLower(err.Error())
	hits := 0
	for _, w := range notSupportedWords {
		if strings.Contains(s, w) {
			hits++
		}
	}
	return hits >= 2
}

// Run executes fn in a transaction on db's client. The ctx passed to fn
// carries the session; store calls must use it.
func Run(ctx context.Context, db *mongo.Database, log *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := db.Client().StartSession()
	if err != nil {
		if IsNotSupported(err) {
			warnFallback(log, err)
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		warnFallback(log, err)
		return fn(ctx)
	}
	return err
}

func warnFallback(log *zap.Logger, err error) {
	if log == nil {
		return
	}
	log.Warn("transactions not supported; running without one", zap.Error(err))
}

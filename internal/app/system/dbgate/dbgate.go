// Package dbgate holds the application's MongoDB handle behind a readiness
// gate.
//
// Handlers receive a *Gate at construction time and ask it for the database
// on every request. Until bootstrap has connected, verified, and prepared the
// database, DB returns ErrNotReady so requests fail fast instead of queuing.
package dbgate

import (
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotReady is returned by DB before MarkReady has been called.
var ErrNotReady = errors.New("database not connected")

// Gate publishes a *mongo.Database once it is ready for use.
type Gate struct {
	mu sync.RWMutex
	db *mongo.Database
}

// New returns a gate that is not ready.
func New() *Gate {
	return &Gate{}
}

// Ready returns a gate that is already open on db. Useful in tests.
func Ready(db *mongo.Database) *Gate {
	g := New()
	g.MarkReady(db)
	return g
}

// MarkReady opens the gate. A nil db closes it again.
func (g *Gate) MarkReady(db *mongo.Database) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.db = db
}

// DB returns the database or ErrNotReady.
func (g *Gate) DB() (*mongo.Database, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.db == nil {
		return nil, ErrNotReady
	}
	return g.db, nil
}

// IsReady reports whether DB would succeed.
func (g *Gate) IsReady() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.db != nil
}

// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/studymate/internal/app/system/dbgate"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// Gate is created closed in ConnectDB and opened by Startup once the schema
// is in place. Handlers only ever reach the database through it.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	Gate          *dbgate.Gate
}

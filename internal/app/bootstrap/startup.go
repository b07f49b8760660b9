// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/studymate/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after DB connections and schema setup are complete, but before
// the HTTP handler is built. It applies timeout overrides and opens the
// database gate so handlers stop answering "Database not connected".
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeout overrides applied from environment", zap.Int("count", n))
	}
	cur := timeouts.Current()
	logger.Info("handler timeouts",
		zap.Duration("ping", cur.Ping),
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium),
		zap.Duration("long", cur.Long))

	deps.Gate.MarkReady(deps.MongoDatabase)
	logger.Info("database ready", zap.String("database", deps.MongoDatabase.Name()))
	return nil
}

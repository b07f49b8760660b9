// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	connectionsfeature "github.com/dalemusser/studymate/internal/app/features/connections"
	errorsfeature "github.com/dalemusser/studymate/internal/app/features/errors"
	healthfeature "github.com/dalemusser/studymate/internal/app/features/health"
	homefeature "github.com/dalemusser/studymate/internal/app/features/home"
	partnersfeature "github.com/dalemusser/studymate/internal/app/features/partners"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. Every feature handler receives the database gate
// rather than the database itself, so the same router answers correctly
// both before Startup opens the gate and after Shutdown closes it.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(errLog.RouteNotFound)

	// Liveness text
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Readiness check for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Gate, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Partner profiles and connection requests
	connHandler := connectionsfeature.NewHandler(deps.Gate, errLog, logger)
	partnersHandler := partnersfeature.NewHandler(deps.Gate, errLog, logger)

	r.Mount("/partners", partnersfeature.Routes(partnersHandler, connHandler.SendRequest))
	r.Mount("/my-partners", partnersfeature.MineRoutes(partnersHandler))
	r.Mount("/my-connections", connectionsfeature.Routes(connHandler))

	return r, nil
}

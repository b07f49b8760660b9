// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// framework-level settings such as ports, TLS and logging; everything the
// study partner service itself needs lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	MongoMaxPoolSize uint64 // Upper bound on pooled connections
	MongoMinPoolSize uint64 // Connections kept warm

	MongoConnectTimeout         time.Duration // Dial timeout for new connections
	MongoServerSelectionTimeout time.Duration // How long an operation waits for a usable server

	// CORS
	CORSAllowedOrigins []string // Origins allowed to call the API ("*" for any)
}

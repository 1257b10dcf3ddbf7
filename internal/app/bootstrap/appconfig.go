// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is where you put everything specific to YOUR application.
// Add fields here as the application grows; the struct is passed to most
// lifecycle hooks.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: treehub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Google OAuth configuration. Sign-in is disabled when either value
	// is blank; the landing page explains how to enable it.
	GoogleClientID     string
	GoogleClientSecret string

	// Base URL used to build the OAuth callback (e.g., "http://localhost:3000")
	BaseURL string

	// Initial map viewport shown before any interaction.
	MapLat  float64
	MapLng  float64
	MapZoom int

	// How often the live feed re-reads the collection when change streams
	// are unavailable (standalone mongod without a replica set).
	LivePollInterval time.Duration

	// Handler timeout tiers (see system/timeouts).
	TimeoutPing   time.Duration
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}

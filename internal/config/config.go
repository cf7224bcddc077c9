// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage provider names accepted by [Storage.Provider].
const (
	// StorageMemory selects the map-backed providers.
	StorageMemory = "memory"

	// StorageSQLite selects the database/sql providers on an in-memory
	// SQLite database.
	StorageSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// go-posts server. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token validation parameters
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the provider implementation backing
	// the resource groups.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds the log level and the optional per-run log directory.
	Log Log `envPrefix:"LOG_"`

	// Metrics controls the Prometheus endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key used to verify bearer JWTs. When empty,
	// the stub validator that accepts every token is used.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer JWTs. Only checked
	// when non-empty; requires TokenSignKey.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Version is the application version reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the providers.
type Storage struct {
	// Provider is either "memory" or "sqlite".
	// Env: STORAGE_PROVIDER
	Provider string `env:"PROVIDER"`

	// DB holds the SQLite connection settings used by the "sqlite" provider.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite provider.
type DB struct {
	// DSN is the go-sqlite3 data source name. It must point at an in-memory
	// database (":memory:" or "mode=memory"), state never outlives the
	// process.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Dir, when set, receives a per-run "<timestamp>.logs" file in addition
	// to stdout.
	// Env: LOG_DIR
	Dir string `env:"DIR"`
}

// Metrics holds settings of the Prometheus endpoint.
type Metrics struct {
	// Disabled removes GET /metrics and the metrics middleware.
	// Env: METRICS_DISABLED
	Disabled bool `env:"DISABLED"`
}

// defaultConfig is the lowest-priority source of the builder.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Storage: Storage{
			Provider: StorageMemory,
			DB: DB{
				DSN: "file::memory:?cache=shared",
			},
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: Log{
			Level: "debug",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

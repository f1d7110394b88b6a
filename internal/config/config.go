// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// chat client and the development assistant server. It is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the version string and the
	// log destination.
	App App `envPrefix:"APP_"`

	// Adapter holds the settings of the client transport talking to the
	// assistant service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address and timeout of the development
	// assistant server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the persistence settings of the development assistant
	// server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the settings of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Reported by the server on /api/status.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the path of the client log file. The terminal UI owns
	// stdout, so the client never logs there unless the file cannot be
	// opened.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the client-side transport settings.
type Adapter struct {
	// APIURL is the base URL of the assistant service API, including the
	// path prefix (e.g. "http://localhost:5000/api").
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds every outbound request of the client
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings of the development assistant
// server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the persistence settings of the development server.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the session store. Empty keeps sessions in memory,
	// "postgres://..." connects to PostgreSQL through pgx, anything else is
	// treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionTTL is how long a session may stay idle before the janitor
	// purges it.
	// Env: WORKERS_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// JanitorInterval is how often the janitor looks for idle sessions.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// GetStructuredConfig merges the configuration sources, later ones winning
// for non-zero fields:
//  1. a .env file in the working directory, if present
//  2. environment variables
//  3. command-line flags
//  4. the JSON file named by CONFIG or -c/-config
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(os.Args[0], os.Args[1:]).
		withJSON().
		build()
}

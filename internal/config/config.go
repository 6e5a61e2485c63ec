// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the sync
// server. It is populated by merging environment variables, command-line
// flags and an optional JSON file, then completed with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds token verification settings and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the item database and the device state backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and transport limits.
	Server Server `envPrefix:"SERVER_"`

	// Sync holds backlog chunking, acknowledgment and fan-out tuning.
	Sync Sync `envPrefix:"SYNC_"`

	// Log holds the logger level and optional rotating file output.
	Log Log `envPrefix:"LOG_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HMAC secret used to verify access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of access tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens issued by the server
	// (used by tooling and tests).
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SyncScope is the scope an access token must grant to open a sync
	// channel.
	// Env: APP_SYNC_SCOPE
	SyncScope string `env:"SYNC_SCOPE"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of all persistence backends.
type Storage struct {
	// DB holds the item database connection settings.
	DB DB `envPrefix:"DB_"`

	// Devices holds the device state backend settings.
	Devices Devices `envPrefix:"DEVICES_"`
}

// DB holds connection settings for the item database.
type DB struct {
	// DSN is the PostgreSQL connection string, or "memory" for the in-process
	// store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Device state backends.
const (
	DevicesBackendFS       = "fs"
	DevicesBackendPostgres = "postgres"
)

// MemoryDSN selects the in-process item store.
const MemoryDSN = "memory"

// Devices holds the device state backend settings.
type Devices struct {
	// Backend is "fs" (one directory per device) or "postgres" (one row per
	// device).
	// Env: STORAGE_DEVICES_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the root directory of the "fs" backend.
	// Env: STORAGE_DEVICES_DIR
	Dir string `env:"DIR"`
}

// Server holds network and timeout settings for the inbound transports.
type Server struct {
	// HTTPAddress is the HTTP (REST and websocket) listen address.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health service listen address.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds REST requests. Websocket sessions are not
	// affected.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins are host patterns accepted in the Origin header of
	// browser websocket clients.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Sync holds tuning of the sync protocol.
type Sync struct {
	// ChunkBudget is the byte budget of one backlog chunk.
	// Env: SYNC_CHUNK_BUDGET
	ChunkBudget int64 `env:"CHUNK_BUDGET"`

	// ItemOverhead is added to every item size when filling a chunk.
	// Env: SYNC_ITEM_OVERHEAD
	ItemOverhead int64 `env:"ITEM_OVERHEAD"`

	// PageSize is the number of rows loaded per store query.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// AckTimeout bounds the wait for a client acknowledgment.
	// Env: SYNC_ACK_TIMEOUT
	AckTimeout time.Duration `env:"ACK_TIMEOUT"`

	// FetchLeaseTimeout is how long a generation 1 fetch counts as in flight
	// without completing.
	// Env: SYNC_FETCH_LEASE_TIMEOUT
	FetchLeaseTimeout time.Duration `env:"FETCH_LEASE_TIMEOUT"`

	// NotificationBuffer is the per-session queue of live notifications.
	// Env: SYNC_NOTIFICATION_BUFFER
	NotificationBuffer int `env:"NOTIFICATION_BUFFER"`

	// MaxMessageSize is the largest websocket message accepted.
	// Env: SYNC_MAX_MESSAGE_SIZE
	MaxMessageSize int64 `env:"MAX_MESSAGE_SIZE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File enables rotating file output when set.
	// Env: LOG_FILE
	File string `env:"FILE"`

	MaxSizeMB  int `env:"MAX_SIZE_MB"`
	MaxBackups int `env:"MAX_BACKUPS"`
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// Workers holds background worker intervals.
type Workers struct {
	// LeaseSweepInterval is how often expired fetch leases are dropped.
	// Env: WORKERS_LEASE_SWEEP_INTERVAL
	LeaseSweepInterval time.Duration `env:"LEASE_SWEEP_INTERVAL"`

	// HealthCheckInterval is how often storage health is probed.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration in the
// following priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Zero fields are then filled from [defaults].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the
// restaurant directory server. It aggregates all sub-configurations and is
// populated by merging values from a JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version.
	App App `envPrefix:"APP_"`

	// Auth holds token signing and password hashing settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration of the relational database and the
	// object storage used for presigned URLs.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds configuration of the auth service.
type Auth struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Required.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and expected on every token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the lifetime of access tokens (default 1h).
	// Env: AUTH_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of refresh tokens (default 168h).
	// Env: AUTH_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// PasswordHashKey is the optional HMAC pepper applied to passwords
	// before bcrypt. Changing it invalidates every stored password.
	// Env: AUTH_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// BcryptCost is the bcrypt work factor (default 10).
	// Env: AUTH_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// CookieTokens makes login also set access_token and refresh_token cookies.
	// Env: AUTH_COOKIE_TOKENS
	CookieTokens bool `env:"COOKIE_TOKENS"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Objects holds the S3-compatible object storage settings.
	Objects Objects `envPrefix:"OBJECTS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database:
	// "postgres://..." opens PostgreSQL through pgx,
	// "sqlite://path", "file:path" or ":memory:" open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Objects holds settings of the S3-compatible bucket images are kept in.
type Objects struct {
	// Endpoint overrides the S3 endpoint (MinIO, R2). Empty means AWS.
	// Env: STORAGE_OBJECTS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Region of the bucket (default "us-east-1").
	// Env: STORAGE_OBJECTS_REGION
	Region string `env:"REGION"`

	// Bucket is the bucket name. Required.
	// Env: STORAGE_OBJECTS_BUCKET
	Bucket string `env:"BUCKET"`

	// AccessKeyID and SecretAccessKey are static credentials. When empty the
	// default AWS credential chain is used.
	// Env: STORAGE_OBJECTS_ACCESS_KEY_ID, STORAGE_OBJECTS_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// UsePathStyle addresses the bucket in the URL path instead of the host.
	// Env: STORAGE_OBJECTS_USE_PATH_STYLE
	UsePathStyle bool `env:"USE_PATH_STYLE"`

	// PresignTTL is the lifetime of issued presigned URLs (default 15m).
	// Env: STORAGE_OBJECTS_PRESIGN_TTL
	PresignTTL time.Duration `env:"PRESIGN_TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (default "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request (default 30s).
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RevocationSweepInterval is how often expired rows are purged from the
	// revocation ledger (default 1h).
	// Env: WORKERS_REVOCATION_SWEEP_INTERVAL
	RevocationSweepInterval time.Duration `env:"REVOCATION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. JSON file (path resolved from the env and flags)
//  2. Environment variables
//  3. Command-line flags
//
// Defaults are applied to fields left empty by every source.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

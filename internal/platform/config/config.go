// Package config loads process configuration from environment variables.
// All values are read once at startup; nothing in the request path reads
// the environment again.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the immutable process configuration.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"ADDR" envDefault:":8080"`

	// DatabaseDSN is the Postgres connection string.
	DatabaseDSN string `env:"DATABASE_DSN"`

	// RedisAddr is the address of the Redis cache. Empty disables caching.
	RedisAddr string `env:"REDIS_ADDR"`

	// RedisPassword is the optional Redis auth password.
	RedisPassword string `env:"REDIS_PASSWORD"`

	// JWTSecret is the symmetric signing key for tokens.
	// It is injected into the token service at construction and never logged.
	JWTSecret string `env:"JWT_SECRET"`

	// RegisterTokenTTL is the lifetime of tokens issued at registration.
	RegisterTokenTTL time.Duration `env:"REGISTER_TOKEN_TTL" envDefault:"24h"`

	// LoginTokenTTL is the lifetime of tokens issued at login.
	// Intentionally shorter than RegisterTokenTTL; the two are separate
	// policies and must be tuned independently.
	LoginTokenTTL time.Duration `env:"LOGIN_TOKEN_TTL" envDefault:"1h"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// CacheTTL is the expiry for cached user records in Redis.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// Load parses configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	return &cfg, nil
}

// Package config loads server configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/forge-api/internal/errors"
)

// Config holds everything the server needs to start
type Config struct {
	// HTTPAddr is the listen address for the REST API
	HTTPAddr string `env:"FORGE_HTTP_ADDR" envDefault:":8080"`

	// RedisAddr is the host:port of the backing Redis instance
	RedisAddr     string `env:"FORGE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"FORGE_REDIS_PASSWORD"`
	RedisDB       int    `env:"FORGE_REDIS_DB" envDefault:"0"`

	// ShutdownTimeout bounds graceful shutdown on SIGTERM
	ShutdownTimeout time.Duration `env:"FORGE_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("FORGE_HTTP_ADDR", c.HTTPAddr, vb)
	errors.ValidateRequired("FORGE_REDIS_ADDR", c.RedisAddr, vb)
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("FORGE_SHUTDOWN_TIMEOUT", "must be positive")
	}

	return vb.Build()
}

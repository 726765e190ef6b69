// Package config provides configuration loading for arbor.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/arbor/internal/logging"
)

// Config is the root configuration for the arbor CLI and query server.
type Config struct {
	Logging logging.Config `koanf:"logging"`
	Engine  EngineConfig   `koanf:"engine"`
	Server  ServerConfig   `koanf:"server"`
}

// EngineConfig holds traversal settings.
type EngineConfig struct {
	// MaxDepth is the Find traversal ceiling.
	MaxDepth int `koanf:"max_depth"`
}

// ServerConfig holds query server settings.
type ServerConfig struct {
	Host      string  `koanf:"host"`
	Port      int     `koanf:"port"`
	RateLimit float64 `koanf:"rate_limit"` // requests per second, 0 disables
	RateBurst int     `koanf:"rate_burst"`
	Watch     bool    `koanf:"watch"` // reload manifests on change
}

// NewDefaultConfig returns the hardcoded defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Logging: *logging.NewDefaultConfig(),
		Engine: EngineConfig{
			MaxDepth: 10000,
		},
		Server: ServerConfig{
			Host:      "localhost",
			Port:      9091,
			RateLimit: 50,
			RateBurst: 100,
			Watch:     false,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if c.Engine.MaxDepth < 1 {
		return fmt.Errorf("engine.max_depth must be >= 1, got %d", c.Engine.MaxDepth)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0, got %f", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		return fmt.Errorf("server.rate_burst must be >= 1 when rate limiting is enabled")
	}
	return nil
}

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	maxConfigFileSize = 1024 * 1024 // 1MB
	envPrefix         = "ARBOR_"
)

// Load loads configuration from a YAML file, then overrides with
// environment variables.
//
// Precedence (highest to lowest):
//  1. Environment variables (ARBOR_SERVER_PORT, ARBOR_LOGGING_LEVEL, ...)
//  2. YAML config file
//  3. Hardcoded defaults
//
// An empty configPath skips the file layer.
//
// Environment variables are mapped by stripping the ARBOR_ prefix,
// lowercasing, and splitting on the first underscore:
//
//	ARBOR_SERVER_PORT       -> server.port
//	ARBOR_ENGINE_MAX_DEPTH  -> engine.max_depth
//	ARBOR_LOGGING_LEVEL     -> logging.level
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := readConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// Split on the first underscore only: section.field_name.
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := NewDefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// readConfigFile opens the file once and validates through the descriptor to
// avoid a stat/read race.
func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

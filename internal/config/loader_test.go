package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 10000, cfg.Engine.MaxDepth)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 9091, cfg.Server.Port)
	assert.False(t, cfg.Server.Watch)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
  format: console
server:
  port: 8080
  watch: true
engine:
  max_depth: 500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.Watch)
	assert.Equal(t, 500, cfg.Engine.MaxDepth)
	// Unset keys keep their defaults.
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600))

	t.Setenv("ARBOR_SERVER_PORT", "7070")
	t.Setenv("ARBOR_LOGGING_LEVEL", "warn")
	t.Setenv("ARBOR_ENGINE_MAX_DEPTH", "42")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 42, cfg.Engine.MaxDepth)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
		{"bad port", "server:\n  port: 99999\n"},
		{"bad depth", "engine:\n  max_depth: 0\n"},
		{"negative rate", "server:\n  rate_limit: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Server.RateLimit = 10
	cfg.Server.RateBurst = 0
	assert.Error(t, cfg.Validate())
}

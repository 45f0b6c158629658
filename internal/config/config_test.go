//nolint:testpackage // Testing internal loader requires same package access
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultServiceName, cfg.Service.Name)
	assert.Equal(t, defaultServicePort, cfg.Service.Port)
	assert.Equal(t, defaultTruncationLength, cfg.Classification.TruncationLength)
	assert.Equal(t, defaultCacheBackend, cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, defaultLogLevel, cfg.Logging.Level)
	assert.False(t, cfg.Classification.ModelEnabled)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := `
service:
  port: 9090
  concurrency: 4
classification:
  model_enabled: true
  model_service_url: http://ml:9000
cache:
  backend: redis
  ttl: 30m
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, 4, cfg.Service.Concurrency)
	assert.True(t, cfg.Classification.ModelEnabled)
	assert.Equal(t, "http://ml:9000", cfg.Classification.ModelServiceURL)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset fields still get defaults.
	assert.Equal(t, defaultTruncationLength, cfg.Classification.TruncationLength)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CLASSIFIER_PORT", "7001")
	t.Setenv("MODEL_SERVICE_URL", "http://sidecar:8081")
	t.Setenv("USE_LIGHTWEIGHT_SENTIMENT", "true")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, 7001, cfg.Service.Port)
	assert.Equal(t, "http://sidecar:8081", cfg.Classification.ModelServiceURL)
	assert.True(t, cfg.Classification.Lightweight)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("service: [not a map"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}, wantErr: false},
		{
			name:    "negative truncation",
			mutate:  func(c *Config) { c.Classification.TruncationLength = -1 },
			wantErr: true,
		},
		{
			name:    "threshold out of range",
			mutate:  func(c *Config) { c.Classification.ModelConfidenceThreshold = 2 },
			wantErr: true,
		},
		{
			name:    "unknown cache backend",
			mutate:  func(c *Config) { c.Cache.Backend = "memcached" },
			wantErr: true,
		},
		{
			name:    "cache disabled allowed",
			mutate:  func(c *Config) { c.Cache.Backend = "none" },
			wantErr: false,
		},
		{
			name:    "zero batch limit",
			mutate:  func(c *Config) { c.Service.BatchLimit = -5 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.setDefaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "config.yml", GetConfigPath("config.yml"))

	t.Setenv("CONFIG_PATH", "/etc/classifier/config.yml")
	assert.Equal(t, "/etc/classifier/config.yml", GetConfigPath("config.yml"))
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("true"))
	assert.True(t, parseBool("1"))
	assert.True(t, parseBool(" YES "))
	assert.False(t, parseBool("false"))
	assert.False(t, parseBool(""))
}

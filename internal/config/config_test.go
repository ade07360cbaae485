package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads defaults", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, 9091, cfg.Server.OpsPort)
		assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)

		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.Equal(t, "stderr", cfg.Logging.Output)

		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)

		assert.Equal(t, "https://api.semanticscholar.org/graph/v1", cfg.SemanticScholar.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.SemanticScholar.Timeout)
		assert.Equal(t, 10.0, cfg.SemanticScholar.RateLimit)
		assert.Equal(t, 10, cfg.SemanticScholar.BurstSize)
		assert.Empty(t, cfg.SemanticScholar.APIKey)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("SCHOLARMCP_SERVER_OPS_PORT", "9999")
		t.Setenv("SCHOLARMCP_LOGGING_LEVEL", "debug")
		t.Setenv("SCHOLARMCP_SEMANTIC_SCHOLAR_BASE_URL", "http://localhost:8080/graph/v1")
		t.Setenv("SCHOLARMCP_SEMANTIC_SCHOLAR_RATE_LIMIT", "100")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9999, cfg.Server.OpsPort)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "http://localhost:8080/graph/v1", cfg.SemanticScholar.BaseURL)
		assert.Equal(t, 100.0, cfg.SemanticScholar.RateLimit)
	})

	t.Run("rejects invalid environment overrides", func(t *testing.T) {
		t.Setenv("SCHOLARMCP_LOGGING_LEVEL", "verbose")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:  ServerConfig{Host: "127.0.0.1", OpsPort: 9091},
			Logging: LoggingConfig{Level: "info", Format: "json", Output: "stderr"},
			Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
			SemanticScholar: SourceConfig{
				BaseURL:   "https://api.semanticscholar.org/graph/v1",
				RateLimit: 10,
				BurstSize: 10,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid config", func(c *Config) {}, ""},
		{"upper-case log level is accepted", func(c *Config) { c.Logging.Level = "DEBUG" }, ""},
		{"zero ops port", func(c *Config) { c.Server.OpsPort = 0 }, "invalid ops port"},
		{"ops port too large", func(c *Config) { c.Server.OpsPort = 70000 }, "invalid ops port"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"missing base url", func(c *Config) { c.SemanticScholar.BaseURL = "" }, "base_url is required"},
		{"zero rate limit", func(c *Config) { c.SemanticScholar.RateLimit = 0 }, "rate_limit must be positive"},
		{"negative burst size", func(c *Config) { c.SemanticScholar.BurstSize = -1 }, "burst_size must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestServerConfig_OpsAddress(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", OpsPort: 9091}
	assert.Equal(t, "0.0.0.0:9091", cfg.OpsAddress())
}

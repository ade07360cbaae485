// Package config provides configuration management for the Semantic Scholar
// MCP server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// APIKeyEnvVar is the environment variable holding the Semantic Scholar API
// key. It is read directly (no prefix) so the standard variable name works.
const APIKeyEnvVar = "SEMANTICSCHOLAR_API_KEY"

// Config holds all configuration for the Semantic Scholar MCP server.
type Config struct {
	// Server contains the operational HTTP server settings.
	Server ServerConfig `mapstructure:"server"`
	// Logging contains structured logging settings.
	Logging LoggingConfig `mapstructure:"logging"`
	// Metrics contains Prometheus metrics exposure settings.
	Metrics MetricsConfig `mapstructure:"metrics"`
	// SemanticScholar contains Semantic Scholar API client settings.
	SemanticScholar SourceConfig `mapstructure:"semantic_scholar"`
}

// ServerConfig holds the operational HTTP server configuration. The MCP
// protocol itself runs over stdio; this server only exposes health and
// metrics endpoints.
type ServerConfig struct {
	// Host is the address to bind the ops server to (default: 127.0.0.1).
	Host string `mapstructure:"host"`
	// OpsPort is the health/metrics server port (default: 9091).
	OpsPort int `mapstructure:"ops_port"`
	// ReadTimeout is the maximum duration for reading request body.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout is the maximum duration for writing response.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level (trace, debug, info, warn, error, fatal, panic).
	Level string `mapstructure:"level"`
	// Format is the log format (json, console).
	Format string `mapstructure:"format"`
	// Output is the log output destination (stdout, stderr).
	// Stdout carries the MCP protocol stream, so logs default to stderr.
	Output string `mapstructure:"output"`
	// AddSource adds source file and line to log output.
	AddSource bool `mapstructure:"add_source"`
	// TimeFormat is the timestamp format.
	TimeFormat string `mapstructure:"time_format"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	// Enabled enables metrics collection and exposure.
	Enabled bool `mapstructure:"enabled"`
	// Path is the HTTP path for the metrics endpoint.
	Path string `mapstructure:"path"`
}

// SourceConfig holds configuration for the Semantic Scholar API client.
type SourceConfig struct {
	// APIKey is the API key (loaded exclusively from SEMANTICSCHOLAR_API_KEY,
	// resolved through the credential store at startup).
	APIKey string `mapstructure:"-"`
	// BaseURL is the Graph API base URL.
	BaseURL string `mapstructure:"base_url"`
	// Timeout is the timeout for API calls.
	Timeout time.Duration `mapstructure:"timeout"`
	// RateLimit is the maximum requests per second.
	RateLimit float64 `mapstructure:"rate_limit"`
	// BurstSize is the maximum burst of requests allowed.
	BurstSize int `mapstructure:"burst_size"`
	// UserAgent is the User-Agent header sent with requests.
	UserAgent string `mapstructure:"user_agent"`
}

// OpsAddress returns the ops HTTP server address.
func (c *ServerConfig) OpsAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.OpsPort)
}

// Load loads configuration from environment variables and config files.
// The API key is populated separately by the caller via the credential store.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("SCHOLARMCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if present
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/semanticscholar-mcp")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use env vars and defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Ops server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.ops_port", 9091)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "15s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.add_source", false)
	v.SetDefault("logging.time_format", time.RFC3339)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Semantic Scholar defaults
	// The API key is loaded exclusively from the environment (see APIKeyEnvVar).
	v.SetDefault("semantic_scholar.base_url", "https://api.semanticscholar.org/graph/v1")
	v.SetDefault("semantic_scholar.timeout", "30s")
	v.SetDefault("semantic_scholar.rate_limit", 10.0)
	v.SetDefault("semantic_scholar.burst_size", 10)
	v.SetDefault("semantic_scholar.user_agent", "Helixir-SemanticScholarMCP/1.0")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.OpsPort <= 0 || c.Server.OpsPort > 65535 {
		return fmt.Errorf("invalid ops port: %d", c.Server.OpsPort)
	}

	validLogLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.SemanticScholar.BaseURL == "" {
		return fmt.Errorf("semantic_scholar base_url is required")
	}
	if c.SemanticScholar.RateLimit <= 0 {
		return fmt.Errorf("semantic_scholar rate_limit must be positive")
	}
	if c.SemanticScholar.BurstSize <= 0 {
		return fmt.Errorf("semantic_scholar burst_size must be positive")
	}

	return nil
}

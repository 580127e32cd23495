// Package config loads the adapter configuration from an optional YAML file,
// the environment, and built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvBaseURL overrides api.base_url when set.
const EnvBaseURL = "INCIDENT_API_URL"

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = "30s"
)

// Config is the top-level adapter configuration.
type Config struct {
	API      APIConfig    `yaml:"api"`
	Server   ServerConfig `yaml:"server"`
	LogLevel string       `yaml:"log_level"` // debug, info, warn or error.
}

// APIConfig describes the remote incident-analysis service.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"` // Duration string (e.g. "30s", "500ms").

	// ErrorMessageFields are tried in order against a remote error body to
	// find a human-readable message. Empty keeps the client default.
	ErrorMessageFields []string `yaml:"error_message_fields"`
}

// ServerConfig is the identity announced to the MCP host.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: defaultBaseURL,
			Timeout: defaultTimeout,
		},
		Server: ServerConfig{
			Name:    "ai-incident-analyzer",
			Version: "1.0.0",
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file and merges it over the defaults, then applies
// environment overrides. Environment variables referenced as ${VAR} or $VAR
// in the YAML are expanded before parsing. An empty path skips the file and
// returns defaults plus environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: load: %w", err)
		}

		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse: %w", err)
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.API.BaseURL = v
	}

	return cfg, nil
}

// TimeoutDuration parses the configured per-call timeout.
func (c APIConfig) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: api.timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: api.timeout must be positive")
	}

	return d, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: api.base_url is required")
	}

	if _, err := c.API.TimeoutDuration(); err != nil {
		return err
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}

	if c.Server.Name == "" {
		return fmt.Errorf("config: server.name is required")
	}

	return nil
}

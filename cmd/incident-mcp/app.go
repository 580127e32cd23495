package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rd4r3/ai-incident-analyzer/pkg/apiclient"
	"github.com/rd4r3/ai-incident-analyzer/pkg/config"
	"github.com/rd4r3/ai-incident-analyzer/pkg/incidents"
	"github.com/rd4r3/ai-incident-analyzer/pkg/tools/incidenttools"
	"github.com/rd4r3/ai-incident-analyzer/pkg/tools/toolbox"
)

// defaultConfigFile is picked up from the working directory when no --config
// flag is given.
const defaultConfigFile = "incident-mcp.yaml"

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// resolveConfigPath returns the explicit flag value, else the default config
// file when it exists, else empty (built-in defaults).
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}

// setup resolves .env, config file, environment and flag overrides into the
// effective configuration and a logger. Logging goes to stderr: stdout
// belongs to the MCP transport.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	envFile, _ := cmd.Flags().GetString("env")
	if err := loadDotEnv(envFile); err != nil {
		return config.Config{}, nil, err
	}

	cfgFlag, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(resolveConfigPath(cfgFlag))
	if err != nil {
		return config.Config{}, nil, err
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	return cfg, log, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildToolBox wires the shared HTTP client, the typed API client and the
// tool catalogue. A registration failure (duplicate name) is fatal.
func buildToolBox(cfg config.Config) (*toolbox.ToolBox, *incidents.Client, error) {
	timeout, err := cfg.API.TimeoutDuration()
	if err != nil {
		return nil, nil, err
	}

	api := apiclient.New(cfg.API.BaseURL, timeout)
	api.MessageFields = cfg.API.ErrorMessageFields

	client := incidents.New(api)

	tb := toolbox.New()
	if err := tb.Register(incidenttools.All(client)...); err != nil {
		return nil, nil, fmt.Errorf("register tools: %w", err)
	}

	return tb, client, nil
}

// Command incident-mcp exposes the incident-analysis REST API as MCP tools
// over stdio. Run with no arguments it serves the tool catalogue; see the
// subcommands for one-shot operations against the same API.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "incident-mcp",
	Short: "MCP adapter for the incident-analysis API",
	Long:  "incident-mcp serves a fixed catalogue of incident-analysis tools to an MCP host over stdio, forwarding each call to the remote incident API.",
	RunE:  runServe,
	// SilenceUsage prevents printing usage on every error
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to configuration file (default: incident-mcp.yaml if present)")
	rootCmd.PersistentFlags().String("env", ".env", "path to .env file (ignored if missing)")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the incident API (overrides config and INCIDENT_API_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("incident-mcp version %s\n", version))

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newCallCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newImportCmd())
}

// ExitError is an error that carries a specific process exit code. Cobra's
// RunE returns this to signal the desired exit code to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

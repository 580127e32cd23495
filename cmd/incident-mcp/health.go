package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the remote incident API",
		RunE:  runHealth,
	}
}

func runHealth(cmd *cobra.Command, _ []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	_, client, err := buildToolBox(cfg)
	if err != nil {
		return err
	}

	status, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("health check against %s failed: %w", cfg.API.BaseURL, err)
	}

	fmt.Printf("%s: %s\n", cfg.API.BaseURL, status.Status)

	if status.Status != "ok" {
		return &ExitError{Code: 1, Message: "API reported status " + status.Status}
	}

	return nil
}

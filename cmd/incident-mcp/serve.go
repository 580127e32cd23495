package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rd4r3/ai-incident-analyzer/pkg/tools/mcpserver"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the tool catalogue to an MCP host over stdio",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	tb, _, err := buildToolBox(cfg)
	if err != nil {
		return err
	}

	srv := mcpserver.New(cfg.Server.Name, cfg.Server.Version, log)
	if err := srv.Register(tb); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("serving MCP on stdio",
		"server", cfg.Server.Name,
		"api", cfg.API.BaseURL,
		"tools", len(tb.Tools()),
	)

	err = srv.Serve(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		// Host disconnect or signal; in-flight calls were abandoned.
		return nil
	}

	return err
}

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbiswatch/state-mirror/pkg/cache"
	"github.com/orbiswatch/state-mirror/pkg/config"
	"github.com/orbiswatch/state-mirror/pkg/db"
	"github.com/orbiswatch/state-mirror/pkg/repository"
)

// NewRootCommand creates the root command for the statemirror CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statemirror",
		Short: "In-memory mirror of the game state store",
	}

	cmd.AddCommand(newBootstrapCommand())
	cmd.AddCommand(newRunCommand())

	return cmd
}

// newBootstrapCommand creates the bootstrap smoke-check command: connect,
// hydrate the full cache once, report per-kind counts and exit. A failure
// of any single bulk read fails the whole run.
func newBootstrapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Hydrate the cache from the database once and report counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))

			conn, err := db.Connect(db.NewConfigFromEnv())
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			ctx := cmd.Context()
			if cfg.BootstrapTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.BootstrapTimeout)
				defer cancel()
			}

			c := cache.New(logger)
			repo := repository.NewPostgresStateRepository(conn)
			if err := c.Bootstrap(ctx, repo); err != nil {
				return err
			}

			cmd.Printf("ready: %v\n", c.Ready())
			cmd.Printf("alliances: %d\n", len(c.Alliances()))
			cmd.Printf("nations: %d\n", len(c.Nations()))
			cmd.Printf("cities: %d\n", len(c.Cities()))
			cmd.Printf("treaties: %d\n", len(c.Treaties()))
			cmd.Printf("users: %d\n", len(c.Users()))
			cmd.Printf("treasures: %d\n", len(c.Treasures()))
			return nil
		},
	}
}

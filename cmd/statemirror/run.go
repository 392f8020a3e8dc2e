package main

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbiswatch/state-mirror/pkg/cache"
	"github.com/orbiswatch/state-mirror/pkg/config"
	"github.com/orbiswatch/state-mirror/pkg/db"
	"github.com/orbiswatch/state-mirror/pkg/hooks"
	"github.com/orbiswatch/state-mirror/pkg/repository"
)

// newRunCommand creates the run command: hydrate the cache, then consume
// change events as JSON lines on stdin and apply them until EOF. A line
// that fails to decode or apply is logged and dropped; it never stops the
// mirror.
func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Hydrate the cache and apply change events from stdin",
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
			bootCtx := ctx
			if cfg.BootstrapTimeout > 0 {
				var cancel context.CancelFunc
				bootCtx, cancel = context.WithTimeout(ctx, cfg.BootstrapTimeout)
				defer cancel()
			}

			c := cache.New(logger)
			repo := repository.NewPostgresStateRepository(conn)
			if err := c.Bootstrap(bootCtx, repo); err != nil {
				return err
			}

			events := make(chan hooks.Event, cfg.HookBuffer)
			go func() {
				defer close(events)
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					line := scanner.Bytes()
					if len(line) == 0 {
						continue
					}
					var e hooks.Event
					if err := json.Unmarshal(line, &e); err != nil {
						logger.Error("dropping undecodable event line", "error", err)
						continue
					}
					select {
					case events <- e:
					case <-ctx.Done():
						return
					}
				}
				if err := scanner.Err(); err != nil {
					logger.Error("event stream read failed", "error", err)
				}
			}()

			hooks.NewDispatcher(c, logger).Run(ctx, events)
			return nil
		},
	}
}

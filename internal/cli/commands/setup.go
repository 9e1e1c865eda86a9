package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/roman/internal/cli/config"
	"github.com/leapstack-labs/roman/internal/cli/output"
	"github.com/leapstack-labs/roman/internal/store"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Store    store.Store
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with an open store and renderer.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cc := NewCommandContextWithoutStore(cmd)

	st, err := openStore(cmd.Context(), cc.Cfg, cc.Logger)
	if err != nil {
		return nil, nil, err
	}
	cc.Store = st

	cleanup := func() {
		if err := st.Close(); err != nil {
			cc.Logger.Warn("failed to close store", "error", err)
		}
	}
	return cc, cleanup, nil
}

// NewCommandContextWithoutStore creates a CommandContext without a store.
// Useful for commands that don't touch person records.
func NewCommandContextWithoutStore(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or built-in defaults when the
// command runs outside the root command (as in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		OutputFormat: config.DefaultOutput,
		Collection:   config.DefaultCollection,
		Store: config.StoreConfig{
			Driver: config.DefaultStoreDriver,
			Path:   config.DefaultStorePath,
		},
		Server: config.ServerConfig{
			Host:              config.DefaultHost,
			Port:              config.DefaultPort,
			ReadHeaderTimeout: config.DefaultReadHeaderTimeout,
			ShutdownTimeout:   config.DefaultShutdownTimeout,
		},
	}
}

// openStore opens the configured backend, creating the SQLite directory if needed.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Store.Driver == store.DriverSQLite && cfg.Store.Path != ":memory:" {
		dir := filepath.Dir(cfg.Store.Path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create store directory: %w", err)
			}
		}
	}

	st, err := store.Open(ctx, store.Config{
		Driver: cfg.Store.Driver,
		Path:   cfg.Store.Path,
		DSN:    cfg.Store.DSN,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

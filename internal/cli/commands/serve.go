package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/roman/internal/server"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Host string
	Port int
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the names HTTP service",
		Long: `Start an HTTP server exposing the names store and the numeral converter.

Routes:
  GET  /                  greeting
  POST /names/            store {"name": string, "age": integer}
  GET  /names/            list stored names
  GET  /names/{name}      fetch one record
  GET  /numerals/{value}  convert a value
  GET  /healthz           store health`,
		Example: `  # Serve with the in-memory store
  roman serve

  # Persist records in SQLite on a custom port
  roman serve --store sqlite --store-path names.db --port 9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "", "Interface to listen on (default: all)")
	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8000)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	cc, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// CLI flags override config file
	serverCfg := cc.Cfg.Server
	if cmd.Flags().Changed("host") {
		serverCfg.Host = opts.Host
	}
	if cmd.Flags().Changed("port") {
		serverCfg.Port = opts.Port
	}

	srv, err := server.New(server.Config{
		Store:             cc.Store,
		Collection:        cc.Cfg.Collection,
		Strict:            cc.Cfg.Convert.Strict,
		FoldCase:          cc.Cfg.Convert.FoldCase,
		Addr:              serverCfg.Addr(),
		ReadHeaderTimeout: serverCfg.ReadHeaderTimeout,
		ShutdownTimeout:   serverCfg.ShutdownTimeout,
		Logger:            cc.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Serving on http://%s (store: %s)\n", serverCfg.Addr(), cc.Cfg.Store.Driver)
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Press Ctrl+C to stop")

	return srv.Serve(ctx)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/quickcart/internal/app"
	"github.com/roach88/quickcart/internal/cart"
	"github.com/roach88/quickcart/internal/catalog"
	"github.com/roach88/quickcart/internal/config"
	"github.com/roach88/quickcart/internal/registry"
	"github.com/roach88/quickcart/internal/seed"
	"github.com/roach88/quickcart/internal/server"
	"github.com/roach88/quickcart/internal/session"
	"github.com/roach88/quickcart/internal/store"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Listen   string
	Database string
	SeedDir  string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront API",
		Long: `Start the storefront API over the local slot database.

The server restores any persisted session, loads the catalog from CUE
seed files (or the embedded default catalog), and exposes the storefront
state machine as JSON endpoints.

Example:
  quickcart serve
  quickcart serve --db /tmp/shop.db --listen 127.0.0.1:9000 --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Listen, "listen", "", "bind address (overrides config)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite slot database (overrides config)")
	cmd.Flags().StringVar(&opts.SeedDir, "seed-dir", "", "directory of CUE seed files (overrides config)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	cfg, err := config.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}
	if opts.Database != "" {
		cfg.Store.Path = opts.Database
	}
	if opts.SeedDir != "" {
		cfg.Seed.Dir = opts.SeedDir
	}

	sd, err := loadSeed(cfg.Seed.Dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load seed catalog", err)
	}
	slog.Info("catalog seeded", "products", len(sd.Products), "categories", len(sd.Categories))

	slog.Info("opening database", "path", cfg.Store.Path)
	slots, err := store.Open(cfg.Store.Path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := slots.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctrl := app.New(app.Config{
		Session:  session.New(slots),
		Registry: registry.New(slots),
		Catalog:  catalog.New(sd.Products, sd.Categories, catalog.NewTimestampGenerator()),
		Cart:     cart.New(),
		// Confirmation arrives over the wire as confirm=true; the
		// transport gate is the prompt, so the controller approves.
		Confirmer:      app.AlwaysConfirm,
		StoreName:      cfg.Store.Name,
		WhatsAppNumber: cfg.Store.WhatsAppNumber,
	})

	// Setup signal handling for graceful shutdown
	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	if err := ctrl.Restore(ctx); err != nil {
		return WrapExitError(ExitCommandError, "failed to restore state", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	httpSrv := &http.Server{
		Addr:    cfg.Listen,
		Handler: server.New(ctrl).Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpSrv.ListenAndServe()
	}()

	slog.Info("storefront started", "addr", cfg.Listen, "db", cfg.Store.Path)
	fmt.Fprintf(cmd.OutOrStdout(), "Storefront listening on %s\n", cfg.Listen)
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl-C to stop.")

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return WrapExitError(ExitFailure, "shutdown error", err)
		}
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return WrapExitError(ExitFailure, "server error", err)
		}
	}

	slog.Info("storefront stopped gracefully")
	return nil
}

// loadSeed resolves the catalog seed: a CUE directory when configured,
// the embedded default otherwise.
func loadSeed(dir string) (seed.Seed, error) {
	if dir == "" {
		return seed.Default(), nil
	}
	return seed.Load(dir)
}

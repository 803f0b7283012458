package cmd

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
	"golang.org/x/sync/errgroup"

	"github.com/ezerfernandes/mdcallout/internal/config"
	"github.com/ezerfernandes/mdcallout/internal/site"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(opts *options) *cobra.Command {
	var port int

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "serve [flags]",
		Short: "Serve markdown documents as HTML pages",
		Long:  serveHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrDefault(opts.config)
			if err != nil {
				return err
			}

			if cmd.Flag("port").Changed {
				cfg.Serve.Port = port

				if err := cfg.Serve.Validate(); err != nil {
					return err
				}
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},

		DisableAutoGenTag: true,
	}

	configFlag(cmd, opts)

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port, overrides the configuration")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	httpServer := &http.Server{ //nolint:exhaustruct
		Addr:              cfg.Serve.Address(),
		Handler:           site.NewServer(os.DirFS(cfg.Input), site.NewCompiler(cfg.Render), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server",
			slog.String("address", cfg.Serve.Address()),
			slog.String("input", cfg.Input))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	return g.Wait()
}

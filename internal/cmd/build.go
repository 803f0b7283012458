package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ezerfernandes/mdcallout/internal/config"
	"github.com/ezerfernandes/mdcallout/internal/site"
)

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
}

func buildCmd(opts *options) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "build [flags]",
		Aliases: []string{"b"},
		Short:   "Build a directory of markdown documents into HTML pages",
		Long:    buildHelp,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrDefault(opts.config)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg)
			fsys := os.DirFS(cfg.Input)

			build := func(ctx context.Context) error {
				stats, err := site.Build(ctx, fsys, cfg, logger)
				if err != nil {
					return err
				}

				opts.status("built %d file(s): %d block(s), %d issue(s), %d failed\n",
					stats.Files, stats.Blocks, stats.Issues, stats.Failed)

				return nil
			}

			if err := build(cmd.Context()); err != nil {
				return err
			}

			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return site.Watch(ctx, cfg.Input, cfg.Include, logger, func() {
				if err := build(ctx); err != nil {
					logger.Error("build failed", slog.String("error", err.Error()))
				}
			})
		},

		DisableAutoGenTag: true,
	}

	configFlag(cmd, opts)

	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild when documents change")

	return cmd
}

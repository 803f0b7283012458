package site

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ezerfernandes/mdcallout/internal/callout"
	"github.com/ezerfernandes/mdcallout/internal/config"
	"github.com/ezerfernandes/mdcallout/internal/render"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Stats summarizes a build.
type Stats struct {
	Files  int
	Blocks int
	Issues int
	Failed int
}

// NewCompiler returns the markdown compiler described by cfg.
func NewCompiler(cfg config.RenderConfig) *render.Compiler {
	var opts []render.Option

	if !cfg.HeadingIDs {
		opts = append(opts, render.WithoutHeadingIDs())
	}

	if cfg.Scripts {
		opts = append(opts, render.WithScripts())
	}

	return render.New(opts...)
}

// OutputPath maps a source path of fsys to its page below outDir.
func OutputPath(outDir, name string) string {
	name = strings.TrimSuffix(name, path.Ext(name)) + ".html"

	return filepath.Join(outDir, filepath.FromSlash(name))
}

// Build compiles every document of fsys selected by cfg into an HTML page
// below cfg.Output. Documents that fail to compile are logged and counted;
// read and write errors abort the build.
func Build(ctx context.Context, fsys fs.FS, cfg *config.Config, logger *slog.Logger) (Stats, error) {
	paths, err := Discover(fsys, cfg.Include, cfg.Exclude)
	if err != nil {
		return Stats{}, fmt.Errorf("discover: %w", err)
	}

	compiler := NewCompiler(cfg.Render)

	var blocks, issues, failed atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for _, name := range paths {
		name := name

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			src, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}

			for _, issue := range callout.Check(string(src)) {
				issues.Add(1)
				logger.Warn("build: block passed through as text",
					slog.String("path", name),
					slog.Int("line", issue.Line),
					slog.String("reason", issue.Err.Error()))
			}

			blocks.Add(int64(len(callout.Unfence(string(src)))))

			var body bytes.Buffer

			doc, err := compiler.Compile(src, &body)
			if err != nil {
				failed.Add(1)
				logger.Error("build: compile failed", slog.String("path", name), slog.String("error", err.Error()))

				return nil
			}

			var page bytes.Buffer
			if err := render.Page(&page, doc, body.Bytes()); err != nil {
				failed.Add(1)
				logger.Error("build: page failed", slog.String("path", name), slog.String("error", err.Error()))

				return nil
			}

			out := OutputPath(cfg.Output, name)
			if err := os.MkdirAll(filepath.Dir(out), dirMode); err != nil {
				return err
			}

			if err := os.WriteFile(out, page.Bytes(), fileMode); err != nil {
				return err
			}

			logger.Debug("build: wrote page", slog.String("path", name), slog.String("output", out))

			return nil
		})
	}

	err = g.Wait()

	stats := Stats{
		Files:  len(paths),
		Blocks: int(blocks.Load()),
		Issues: int(issues.Load()),
		Failed: int(failed.Load()),
	}

	return stats, err
}

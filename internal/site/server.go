package site

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ezerfernandes/mdcallout/internal/render"
)

// NewServer returns a handler that renders the markdown documents of fsys as
// HTML pages on request. A request for /a/b serves a/b.md, a directory
// request serves its index.md.
func NewServer(fsys fs.FS, compiler *render.Compiler, logger *slog.Logger) http.Handler {
	s := &server{fsys: fsys, compiler: compiler, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/*", s.page)

	return r
}

type server struct {
	fsys     fs.FS
	compiler *render.Compiler
	logger   *slog.Logger
}

func (s *server) page(w http.ResponseWriter, r *http.Request) {
	var (
		name string
		src  []byte
		err  error = fs.ErrNotExist
	)

	for _, name = range documentNames(chi.URLParam(r, "*")) {
		if !fs.ValidPath(name) {
			continue
		}

		src, err = fs.ReadFile(s.fsys, name)
		if !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}

	if errors.Is(err, fs.ErrNotExist) {
		http.NotFound(w, r)

		return
	}

	if err != nil {
		s.logger.Error("serve: read failed", slog.String("path", name), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	var body, page bytes.Buffer

	doc, err := s.compiler.Compile(src, &body)
	if err == nil {
		err = render.Page(&page, doc, body.Bytes())
	}

	if err != nil {
		s.logger.Error("serve: render failed", slog.String("path", name), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page.Bytes())
}

// documentNames lists the files that may back urlPath, in lookup order.
func documentNames(urlPath string) []string {
	urlPath = strings.Trim(urlPath, "/")

	switch {
	case urlPath == "":
		return []string{"index.md"}
	case path.Ext(urlPath) == ".md":
		return []string{urlPath}
	case path.Ext(urlPath) == ".html":
		urlPath = strings.TrimSuffix(urlPath, ".html")
	}

	return []string{urlPath + ".md", path.Join(urlPath, "index.md")}
}

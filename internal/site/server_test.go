package site

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/mdcallout/internal/render"
)

func TestServer(t *testing.T) {
	t.Parallel()

	fsys := newFS(t, map[string]string{
		"index.md":              "# Home\n",
		"guides/setup.md":       ":::danger Stop\nNo.\n:::\n",
		"guides/index.md":       "# Guides\n",
		"reference/api.md":      "# API\n",
		"reference/nested/x.md": "x",
	})

	srv := httptest.NewServer(NewServer(fsys, render.New(), discardLogger()))
	t.Cleanup(srv.Close)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{path: "/health", status: http.StatusOK, contains: `{"status":"ok"}`},
		{path: "/", status: http.StatusOK, contains: "<title>Home</title>"},
		{path: "/guides/setup", status: http.StatusOK, contains: `<p class="custom-block-title">Stop</p>`},
		{path: "/guides/setup.html", status: http.StatusOK, contains: `<div class="custom-block danger">`},
		{path: "/guides/setup.md", status: http.StatusOK, contains: "No."},
		{path: "/guides/", status: http.StatusOK, contains: "<title>Guides</title>"},
		{path: "/reference/api", status: http.StatusOK, contains: "<title>API</title>"},
		{path: "/reference", status: http.StatusNotFound},
		{path: "/missing", status: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			resp, err := http.Get(srv.URL + tc.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Contains(t, string(body), tc.contains)
		})
	}
}

func TestDocumentNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"index.md"}, documentNames("/"))
	assert.Equal(t, []string{"a/b.md"}, documentNames("a/b.md"))
	assert.Equal(t, []string{"a/b.md", "a/b/index.md"}, documentNames("a/b.html"))
	assert.Equal(t, []string{"a.md", "a/index.md"}, documentNames("/a/"))
}

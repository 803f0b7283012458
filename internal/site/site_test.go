package site

import (
	"io"
	"log/slog"
	"path"
	"testing"

	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/require"
)

func newFS(t *testing.T, files map[string]string) *memoryfs.FS {
	t.Helper()

	memfs := memoryfs.New()

	for name, content := range files {
		if dir := path.Dir(name); dir != "." {
			require.NoError(t, memfs.MkdirAll(dir, 0o700))
		}

		require.NoError(t, memfs.WriteFile(name, []byte(content), 0o600))
	}

	return memfs
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package site

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRebuildsOnChange(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes atomic.Int32

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, root, []string{"*.md", "**/*.md"}, discardLogger(), func() {
			changes.Add(1)
		})
	}()

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600))
	time.Sleep(2 * debounce)
	assert.Zero(t, changes.Load())

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.md"), []byte(":::tip\nx\n:::"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("b"), 0o600))

	assert.Eventually(t, func() bool { return changes.Load() >= 1 }, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherReportsOnlyWatchedFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "viewport-thresholds.json")

	fw, err := NewFileWatcher([]string{target})
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0644))

	select {
	case ev := <-fw.Events():
		assert.Equal(t, target, ev.Path)
		assert.NotEmpty(t, ev.Operation)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for watched file")
	}
}

func TestFileWatcherMissingDirectory(t *testing.T) {
	_, err := NewFileWatcher([]string{filepath.Join(t.TempDir(), "missing", "file.json")})
	assert.Error(t, err)
}

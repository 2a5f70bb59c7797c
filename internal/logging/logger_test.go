package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestOpenWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	l, err := Open(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, l.Path())

	l.Info("started", "seed", 42)
	l.Debug("hidden")
	require.NoError(t, l.Close())

	out := readLog(t, path)
	assert.Contains(t, out, "scoundrel")
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "seed=42")
	assert.NotContains(t, out, "hidden")
}

func TestOpenDebugLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := Open(Options{Path: path, Debug: true})
	require.NoError(t, err)
	l.Debug("room drawn", "drawn", 4)
	require.NoError(t, l.Close())

	assert.Contains(t, readLog(t, path), "room drawn")
}

func TestOpenAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "debug.log")
	for _, msg := range []string{"first", "second"} {
		l, err := Open(Options{Path: path})
		require.NoError(t, err)
		l.Info(msg)
		require.NoError(t, l.Close())
	}

	out := readLog(t, path)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestOpenRotatesLargeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0o600))

	l, err := Open(Options{Path: path})
	require.NoError(t, err)
	l.Info("fresh")
	require.NoError(t, l.Close())

	assert.Contains(t, readLog(t, path), "fresh")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	backups := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "debug.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)
}

func TestOpenWithoutPathDiscards(t *testing.T) {
	t.Parallel()

	l, err := Open(Options{})
	require.NoError(t, err)
	assert.Empty(t, l.Path())
	assert.NotPanics(t, func() {
		l.Info("nowhere")
		l.LogPanic("boom")
	})
	assert.NoError(t, l.Close())
}

func TestLogPanicRecordsStack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := Open(Options{Path: path})
	require.NoError(t, err)
	l.LogPanic("boom")
	require.NoError(t, l.Close())

	out := readLog(t, path)
	assert.Contains(t, out, "panic")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "goroutine")
}

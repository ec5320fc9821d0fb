package upload

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeAged(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	mod := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestSweeper_RemovesOnlyStaleStagedFiles(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	stale := writeAged(t, dir, "upload-old.png", 2*time.Hour)
	fresh := writeAged(t, dir, "upload-new.png", time.Minute)
	foreign := writeAged(t, dir, "keep.txt", 5*time.Hour)

	s := NewSweeper(dir, time.Hour, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	req.Equal(1, s.Sweep())

	_, err := os.Stat(stale)
	req.True(os.IsNotExist(err))
	req.FileExists(fresh)
	req.FileExists(foreign)
}

func TestSweeper_MissingDir(t *testing.T) {
	s := NewSweeper(filepath.Join(t.TempDir(), "absent"), time.Hour, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Zero(t, s.Sweep())
}

func TestSweeper_StartStop(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	stale := writeAged(t, dir, "upload-old.gif", 2*time.Hour)

	s := NewSweeper(dir, time.Hour, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Start()
	// The first sweep runs before the loop waits on the ticker.
	req.Eventually(func() bool {
		_, err := os.Stat(stale)
		return os.IsNotExist(err)
	}, time.Second, 10*time.Millisecond)
	s.Stop()
	s.Stop()
}

func TestSweeper_StopWithoutStart(t *testing.T) {
	s := NewSweeper(t.TempDir(), time.Hour, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Stop()
}

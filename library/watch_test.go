package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/multiline"
)

const watchTimeout = 5 * time.Second

func TestWatch_ReloadOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates:\n  greeting: old {}\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	libs, errs, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("templates:\n  greeting: |\n    Hello:\n        {}\n"), 0644))

	deadline := time.After(watchTimeout)
	for {
		select {
		case lib, ok := <-libs:
			require.True(t, ok, "library channel closed before reload")
			out, err := lib.Render("greeting", "world")
			require.NoError(t, err)
			if out == "Hello:\n    world" {
				return
			}
			// Stale event for the old content; keep waiting.
		case <-errs:
			// A partially written file can fail to decode; keep waiting.
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatch_InvalidContentReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates:\n  ok: '{}'\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	libs, errs, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("templates:\n  bad: 'a {} b {}'\n"), 0644))

	deadline := time.After(watchTimeout)
	for {
		select {
		case err := <-errs:
			if assert.ErrorIs(t, err, multiline.ErrMultiplePlaceholders) {
				return
			}
		case <-libs:
			t.Fatal("invalid document should not produce a library")
		case <-deadline:
			t.Fatal("timed out waiting for validation error")
		}
	}
}

func TestWatch_CancelClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates: {}\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	libs, errs, err := Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-libs:
		assert.False(t, ok, "library channel should close on cancel")
	case <-time.After(watchTimeout):
		t.Fatal("library channel did not close")
	}

	select {
	case _, ok := <-errs:
		assert.False(t, ok, "error channel should close on cancel")
	case <-time.After(watchTimeout):
		t.Fatal("error channel did not close")
	}
}

func TestWatch_UnsupportedExtension(t *testing.T) {
	_, _, err := Watch(context.Background(), filepath.Join(t.TempDir(), "snippets.txt"))
	assert.ErrorIs(t, err, ErrFormat)
}

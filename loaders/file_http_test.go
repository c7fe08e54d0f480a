package loaders

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://example.com/a.md"))
	assert.True(t, IsURL("https://example.com/a.md"))
	assert.False(t, IsURL("notes/a.md"))
	assert.False(t, IsURL("/tmp/http.md"))
}

func TestFileHTTP_LoadEmptySource(t *testing.T) {
	_, _, err := (&FileHTTP{}).Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestFileHTTP_LoadLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("# Local\n"), 0o644))

	content, name, err := (&FileHTTP{}).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "# Local\n", content)
	assert.Equal(t, path, name)
}

func TestFileHTTP_LoadLocalMissing(t *testing.T) {
	_, _, err := (&FileHTTP{}).Load(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileHTTP_LoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/note.md" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("# Remote\n"))
	}))
	defer srv.Close()

	loader := &FileHTTP{Client: srv.Client()}

	content, name, err := loader.Load(context.Background(), srv.URL+"/note.md")
	require.NoError(t, err)
	assert.Equal(t, "# Remote\n", content)
	assert.Equal(t, srv.URL+"/note.md", name)

	_, _, err = loader.Load(context.Background(), srv.URL+"/missing.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200 status: 404")
}

func TestFileHTTP_LoadURLCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("never read"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := (&FileHTTP{Client: srv.Client()}).Load(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

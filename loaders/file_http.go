package loaders

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptySource is returned when Load is called without a source.
var ErrEmptySource = errors.New("empty source")

// FileHTTP loads the initial snapshot text from HTTP(S) URLs and local files.
type FileHTTP struct {
	// Client is used for HTTP(S) requests; if nil, http.DefaultClient is used.
	Client *http.Client
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load returns the content of source and a canonical name for it:
// the URL itself or the absolute file path.
func (f *FileHTTP) Load(ctx context.Context, source string) (content string, name string, err error) {
	if source == "" {
		return "", "", ErrEmptySource
	}

	if IsURL(source) {
		content, err := f.fetchFromWeb(ctx, source)
		return content, source, err
	}

	absPath, err := filepath.Abs(source)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve path: %w", err)
	}
	content, err = f.fetchFromLocal(absPath)
	return content, absPath, err
}

func (f *FileHTTP) fetchFromWeb(ctx context.Context, url string) (content string, err error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned non-200 status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

func (f *FileHTTP) fetchFromLocal(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read local file: %w", err)
	}
	return string(content), nil
}

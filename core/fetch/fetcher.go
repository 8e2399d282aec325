// Package fetch implements the Loader interface.
// A source is either a local file path or an http(s) URL.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gaurav-prasanna/wp2plus/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "wp2plus/1.0 (https://github.com/gaurav-prasanna/wp2plus)"
)

// SourceLoader reads posts from disk or over HTTP.
type SourceLoader struct {
	client *http.Client
}

// New creates a SourceLoader with a sensible HTTP timeout.
func New() *SourceLoader {
	return &SourceLoader{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Load returns the text behind source. Missing files and failed fetches
// wrap core.ErrInputNotFound.
func (l *SourceLoader) Load(ctx context.Context, source string) (string, error) {
	if isURL(source) {
		return l.fetch(ctx, source)
	}
	return readFile(source)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%w: %s", core.ErrInputNotFound, path)
		}
		return "", fmt.Errorf("%w: reading %s: %v", core.ErrInputNotFound, path, err)
	}
	return string(data), nil
}

func (l *SourceLoader) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,text/plain")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetching %s: %v", core.ErrInputNotFound, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d for %s", core.ErrInputNotFound, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

package articles

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Fetcher retrieves a raw article document by file name. Implementations
// must perform at most one retrieval attempt per call; retry policy is
// deliberately absent (a single attempt, then the caller's fallback).
type Fetcher interface {
	Fetch(ctx context.Context, file string) ([]byte, error)
}

// HTTPFetcher retrieves article documents with a single HTTP GET against a
// base URL, e.g. https://cdn.example.com/blogs. Any transport error or
// non-2xx status is a fetch failure; the status class is not distinguished
// further because the caller treats all failures uniformly.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher builds a fetcher for the given base URL with a bounded
// request timeout.
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, file string) ([]byte, error) {
	u, err := url.JoinPath(f.BaseURL, file)
	if err != nil {
		return nil, fmt.Errorf("building article URL for %q: %w", file, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", u, err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", u, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", u, err)
	}
	return body, nil
}

// FSFetcher retrieves article documents from a filesystem subtree, used
// when articles are served from the embedded content or a local content
// directory instead of a remote origin.
type FSFetcher struct {
	FS  fs.FS
	Dir string
}

func (f *FSFetcher) Fetch(ctx context.Context, file string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := fs.ReadFile(f.FS, path.Join(f.Dir, file))
	if err != nil {
		return nil, fmt.Errorf("reading article %q: %w", file, err)
	}
	return body, nil
}

package nav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"time"
)

// ErrNotFound is returned when a page does not exist.
var ErrNotFound = errors.New("page not found")

// Source retrieves page fragments by name.
type Source interface {
	Fetch(ctx context.Context, page string) (string, error)
}

// pagePath returns the site-relative path of a page fragment.
func pagePath(page string) string {
	return path.Join("pages", page+".html")
}

// FSSource reads fragments from a file system laid out like the site root.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a source over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Fetch reads pages/<page>.html.
func (s *FSSource) Fetch(ctx context.Context, page string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p := pagePath(page)
	if path.Dir(p) != "pages" || !fs.ValidPath(p) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, page)
	}
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, page)
		}
		return "", fmt.Errorf("reading %s: %w", p, err)
	}
	return string(data), nil
}

// HTTPSource fetches fragments relative to a base URL.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPSource creates a source for the site at baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: unsupported scheme %q", baseURL, u.Scheme)
	}
	if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}
	return &HTTPSource{
		base:   u,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Fetch GETs pages/<page>.html. Any non-2xx status is an error.
func (s *HTTPSource) Fetch(ctx context.Context, page string) (string, error) {
	ref, err := url.Parse(pagePath(page))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrNotFound, page)
	}
	target := s.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: unexpected status %d", target, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", target, err)
	}
	return string(data), nil
}

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// ErrUnexpectedStatus is returned when the site answers with a non-success
// HTTP status. Callers treat it like any other fetch failure.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Fetcher downloads the advertised site's HTML.
//
// Design decision: We use a struct with the http.Client rather than
// passing the client on each call because:
//  1. Client configuration (timeouts) should be consistent
//  2. Connection pooling works better with a shared client
//  3. Easier to test with httptest servers
type Fetcher struct {
	// client performs the HTTP requests.
	client *http.Client

	// userAgent identifies the tool in HTTP requests. A descriptive
	// User-Agent lets site operators recognize the audit traffic.
	userAgent string

	// maxBodySize limits the response body size to prevent memory
	// exhaustion from unexpectedly large pages.
	maxBodySize int64

	// timeout is the per-request timeout.
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = timeout
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// WithClient replaces the underlying HTTP client. Used in tests.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a Fetcher with sensible defaults: a 15 second
// timeout and a 5MB body limit.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{},
		userAgent:   "Mozilla/5.0 (compatible; SiteComplianceBot/1.0)",
		maxBodySize: 5 * 1024 * 1024,
		timeout:     15 * time.Second,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch downloads the page at the given URL and returns its markup as a
// UTF-8 string. Non-2xx responses, timeouts and oversized bodies are all
// reported as errors; the caller degrades to empty text.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close on read path

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: %w: %s", rawURL, ErrUnexpectedStatus, resp.Status)
	}

	// Decode legacy encodings (ISO-8859-1 is still common on small
	// Brazilian business sites) into UTF-8 before parsing.
	body := io.LimitReader(resp.Body, f.maxBodySize)
	reader, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", rawURL, err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}

	return string(data), nil
}

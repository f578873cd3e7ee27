package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestFetch tests downloading a page from a local test server.
func TestFetch(t *testing.T) {
	t.Parallel()

	const page = "<html><body><p>Serviços de contabilidade</p></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(page)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	got, err := NewFetcher().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if got != page {
		t.Errorf("Fetch = %q, expected %q", got, page)
	}
}

// TestFetchSendsUserAgent tests that the configured User-Agent reaches
// the server.
func TestFetchSendsUserAgent(t *testing.T) {
	t.Parallel()

	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	fetcher := NewFetcher(WithUserAgent("compliance-audit/2.0"))
	if _, err := fetcher.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if seen != "compliance-audit/2.0" {
		t.Errorf("User-Agent = %q", seen)
	}
}

// TestFetchNonSuccessStatus tests that non-2xx responses surface the
// status sentinel.
func TestFetchNonSuccessStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "redirect loop cut short", status: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			_, err := NewFetcher().Fetch(context.Background(), server.URL)
			if !errors.Is(err, ErrUnexpectedStatus) {
				t.Errorf("expected ErrUnexpectedStatus, got %v", err)
			}
		})
	}
}

// TestFetchDecodesLegacyCharset tests ISO-8859-1 pages are converted to
// UTF-8.
func TestFetchDecodesLegacyCharset(t *testing.T) {
	t.Parallel()

	// "Contabilidade São João" with Latin-1 bytes for ã (0xE3).
	latin1 := []byte("Contabilidade S\xe3o Jo\xe3o")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		if _, err := w.Write(latin1); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	got, err := NewFetcher().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if got != "Contabilidade São João" {
		t.Errorf("Fetch = %q, expected decoded UTF-8", got)
	}
}

// TestFetchBodySizeLimit tests that oversized bodies are cut at the
// configured limit.
func TestFetchBodySizeLimit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(strings.Repeat("a", 1024))); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	got, err := NewFetcher(WithMaxBodySize(64)).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(got) != 64 {
		t.Errorf("body length = %d, expected 64", len(got))
	}
}

// TestFetchTimeout tests that slow servers trip the per-request timeout.
func TestFetchTimeout(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()
	defer close(done)

	_, err := NewFetcher(WithTimeout(50*time.Millisecond)).Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

// TestFetchCanceledContext tests caller-driven cancellation.
func TestFetchCanceledContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFetcher().Fetch(ctx, server.URL); err == nil {
		t.Fatal("expected error from canceled context")
	}
}

// TestFetchInvalidURL tests the request-building error path.
func TestFetchInvalidURL(t *testing.T) {
	t.Parallel()

	if _, err := NewFetcher().Fetch(context.Background(), "http://[::1]:namedport"); err == nil {
		t.Fatal("expected error for malformed URL")
	}
}

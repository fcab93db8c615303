package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewProxyFunc(t *testing.T) {
	proxy := NewProxyFunc(ProxySettings{
		HTTPProxy:  "http://proxy.local:3128",
		HTTPSProxy: "http://secure.local:3129",
		NoProxy:    "localhost, .internal.nl",
	})

	tests := []struct {
		url  string
		want string
	}{
		{"https://nl.wikipedia.org/w/api.php", "http://secure.local:3129"},
		{"http://nl.wikipedia.org/w/api.php", "http://proxy.local:3128"},
		{"http://localhost:8080/", ""},
		{"https://api.internal.nl/v1", ""},
		{"https://internal.nl/v1", ""},
	}

	for _, tt := range tests {
		req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
		got, err := proxy(req)
		if err != nil {
			t.Fatalf("proxy(%s) failed: %v", tt.url, err)
		}
		gotStr := ""
		if got != nil {
			gotStr = got.String()
		}
		if gotStr != tt.want {
			t.Errorf("proxy(%s) = %q, want %q", tt.url, gotStr, tt.want)
		}
	}
}

func TestNormalizeUserAgent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Raadsel/0.1 (+https://github.com/ppiankov/raadsel)", "Raadsel"},
		{"curl/8.0", "curl"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeUserAgent(tt.in); got != tt.want {
			t.Errorf("NormalizeUserAgent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRobotsChecker_CanFetch(t *testing.T) {
	var fetches int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		atomic.AddInt32(&fetches, 1)
		_, _ = w.Write([]byte("User-agent: Raadsel\nDisallow: /w/index.php\nCrawl-delay: 2\n"))
	}))
	defer server.Close()

	checker := NewRobotsChecker(server.Client(), "Raadsel/0.1")
	ctx := context.Background()

	allowed, delay, err := checker.CanFetch(ctx, server.URL+"/w/api.php")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("Expected api.php to be allowed")
	}
	if delay != 2*time.Second {
		t.Errorf("Expected crawl delay 2s, got %v", delay)
	}

	allowed, _, _ = checker.CanFetch(ctx, server.URL+"/w/index.php")
	if allowed {
		t.Error("Expected index.php to be disallowed")
	}

	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("Expected robots.txt to be fetched once, got %d", n)
	}
}

func TestRobotsChecker_MissingFileAllowsAll(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	checker := NewRobotsChecker(server.Client(), "Raadsel/0.1")
	allowed, _, err := checker.CanFetch(context.Background(), server.URL+"/anything")
	if err != nil || !allowed {
		t.Errorf("Expected allowed without error, got %v, %v", allowed, err)
	}
}

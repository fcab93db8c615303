// Package util holds the HTTP plumbing shared by the wiki client and the LLM providers.
package util

import (
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ProxySettings are the explicit proxy overrides from the configuration
type ProxySettings struct {
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string // Comma-separated hosts or domain suffixes
}

// NewProxyFunc picks a proxy per request. Without explicit proxies it
// falls back to the HTTP_PROXY family of environment variables.
func NewProxyFunc(p ProxySettings) func(*http.Request) (*url.URL, error) {
	if p.HTTPProxy == "" && p.HTTPSProxy == "" {
		return http.ProxyFromEnvironment
	}

	bypass := splitNoProxy(p.NoProxy)

	return func(req *http.Request) (*url.URL, error) {
		if bypassed(req.URL.Hostname(), bypass) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && p.HTTPSProxy != "" {
			return url.Parse(p.HTTPSProxy)
		}
		if p.HTTPProxy != "" {
			return url.Parse(p.HTTPProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

// NewHTTPClient returns a client with the given timeout routed through the configured proxies
func NewHTTPClient(timeout time.Duration, p ProxySettings) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               NewProxyFunc(p),
			MaxIdleConnsPerHost: 8,
		},
	}
}

func splitNoProxy(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// bypassed matches exact hosts, "*" and domain suffixes such as ".wikipedia.org"
func bypassed(host string, bypass []string) bool {
	host = strings.ToLower(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	for _, b := range bypass {
		switch {
		case b == "*":
			return true
		case host == strings.TrimPrefix(b, "."):
			return true
		case strings.HasSuffix(host, "."+strings.TrimPrefix(b, ".")):
			return true
		}
	}
	return false
}

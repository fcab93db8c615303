// Package wiki retrieves disambiguation pages, their links and the
// description, categories and popularity of every linked page from the
// MediaWiki and Wikidata APIs.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ppiankov/raadsel/internal/cache"
	"github.com/ppiankov/raadsel/internal/model"
	"github.com/ppiankov/raadsel/internal/util"
	"github.com/ppiankov/raadsel/internal/worker"
	"go.uber.org/zap"
)

// ErrDisallowed is returned when robots.txt forbids a request
var ErrDisallowed = errors.New("disallowed by robots.txt")

// StatusError is a non-2xx HTTP response
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Code, e.URL)
}

// APIError is an error object returned by the MediaWiki action API
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Info)
}

// Fetcher performs rate-limited, cached GET requests that return JSON
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	limiter   *worker.Limiter
	robots    *util.RobotsChecker // nil when robots.txt is ignored
	cache     cache.Cache
	logger    *zap.Logger
}

// NewFetcher creates a fetcher from the wiki configuration
func NewFetcher(cfg model.WikiConfig, limiter *worker.Limiter, c cache.Cache, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		c = cache.Nop{}
	}

	client := util.NewHTTPClient(cfg.Timeout, util.ProxySettings{
		HTTPProxy:  cfg.HTTPProxy,
		HTTPSProxy: cfg.HTTPSProxy,
		NoProxy:    cfg.NoProxy,
	})
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= 3 {
			return fmt.Errorf("stopped after 3 redirects")
		}
		return nil
	}

	f := &Fetcher{
		client:    client,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		limiter:   limiter,
		cache:     c,
		logger:    logger,
	}
	if cfg.RespectRobots {
		f.robots = util.NewRobotsChecker(client, cfg.UserAgent)
	}
	return f
}

// GetJSON requests endpoint with params and decodes the body into out.
// Successful responses are cached under namespace.
func (f *Fetcher) GetJSON(ctx context.Context, namespace, endpoint string, params url.Values, out any) error {
	rawURL := endpoint
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}
	key := cache.Key(namespace, rawURL)

	if body, ok := f.cache.Get(key); ok {
		f.logger.Debug("cache hit", zap.String("url", rawURL))
		return decode(body, out)
	}

	body, err := f.fetch(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := decode(body, out); err != nil {
		return fmt.Errorf("%s: %w", rawURL, err)
	}

	if err := f.cache.Set(key, body, 0); err != nil {
		f.logger.Warn("cache write failed", zap.String("url", rawURL), zap.Error(err))
	}
	return nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("%s: %w", rawURL, ErrDisallowed)
		}
		if delay > 0 && f.limiter != nil {
			if u, err := url.Parse(rawURL); err == nil {
				f.limiter.Throttle(u.Host, delay)
			}
		}
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: rawURL, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%s: response exceeds %d bytes", rawURL, f.maxBytes)
	}

	f.logger.Debug("fetched", zap.String("url", rawURL), zap.Int("bytes", len(body)))
	return body, nil
}

// decode unmarshals body into out, surfacing MediaWiki error objects
func decode(body []byte, out any) error {
	var probe struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if probe.Error != nil {
		return probe.Error
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

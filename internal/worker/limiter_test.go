package worker

import (
	"context"
	"testing"
	"time"

	"github.com/ppiankov/raadsel/internal/model"
)

func TestNewLimiter(t *testing.T) {
	if l := NewLimiter(10, 5); l.defaultBurst != 5 {
		t.Errorf("Expected burst 5, got %d", l.defaultBurst)
	}
	if l := NewLimiter(10, -1); l.defaultBurst != 5 {
		t.Errorf("Expected default burst 5 for negative input, got %d", l.defaultBurst)
	}

	l := NewLimiterFromConfig(model.RateLimitConfig{RequestsPerSecond: 2, BurstSize: 3})
	if l.defaultRate != 2 || l.defaultBurst != 3 {
		t.Errorf("Expected rate 2 burst 3, got %v burst %d", l.defaultRate, l.defaultBurst)
	}
}

func TestLimiter_PerHost(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if err := limiter.Wait(context.Background(), "https://nl.wikipedia.org/w/api.php"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if limiter.Allow("https://nl.wikipedia.org/w/api.php?x=1") {
		t.Error("Expected second request to the same host to be throttled")
	}
	if !limiter.Allow("https://www.wikidata.org/w/api.php") {
		t.Error("Expected another host to be allowed")
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 1)

	start := time.Now()
	if err := limiter.WaitWithDelay(context.Background(), "http://example.com", 50*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}
	if d := time.Since(start); d < 50*time.Millisecond {
		t.Errorf("Expected delay >= 50ms, got %v", d)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := limiter.WaitWithDelay(ctx, "http://other.com", time.Second); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestLimiter_Throttle(t *testing.T) {
	limiter := NewLimiter(10, 10)

	limiter.Throttle("slow.org", 10*time.Second)
	if !limiter.Allow("http://slow.org/a") {
		t.Error("Expected first request to pass")
	}
	if limiter.Allow("http://slow.org/b") {
		t.Error("Expected second request to be throttled")
	}

	// Throttle never speeds a host up
	limiter.Throttle("slow.org", time.Millisecond)
	if got := limiter.forHost("slow.org").Limit(); got > 0.2 {
		t.Errorf("Expected limit to stay at 0.1, got %v", got)
	}
}

func TestHostOf(t *testing.T) {
	host, err := hostOf("https://nl.wikipedia.org/wiki/Mars")
	if err != nil || host != "nl.wikipedia.org" {
		t.Errorf("Expected nl.wikipedia.org, got %q, %v", host, err)
	}
	if _, err := hostOf("::invalid"); err == nil {
		t.Error("Expected error for invalid URL")
	}
}

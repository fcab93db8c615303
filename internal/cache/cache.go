// Package cache stores raw API responses so repeated pipeline runs do not
// hit Wikipedia, Wikidata or the pageview service again.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store with per-entry expiry
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// keyPrefix is bumped whenever the cached response shape changes
const keyPrefix = "raadsel:v1:"

// Key derives a cache key for a request URL within a namespace such as "mediawiki" or "pageviews"
func Key(namespace, url string) string {
	hash := sha256.Sum256([]byte(url))
	return keyPrefix + namespace + ":" + hex.EncodeToString(hash[:])
}

// Nop is a Cache that never stores anything, used when caching is disabled
type Nop struct{}

// Get always misses
func (Nop) Get(string) ([]byte, bool) {
	return nil, false
}

// Set discards the value
func (Nop) Set(string, []byte, time.Duration) error {
	return nil
}

// Delete is a no-op
func (Nop) Delete(string) error {
	return nil
}

// Clear is a no-op
func (Nop) Clear() error {
	return nil
}

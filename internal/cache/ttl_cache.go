// Package cache provides a best-effort TTL read-through cache. Every
// failure inside it looks like a miss to the caller.
package cache

import (
	"encoding/json"
	"time"

	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/pkg/logger"
)

// Cache is what loaders depend on.
type Cache interface {
	Get(key string, dst any) bool
	Set(key string, value any)
}

// TTLCache stores JSON payloads in a Store and refuses to return them once
// they are older than its TTL. Expiry is checked on read only.
type TTLCache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewTTLCache creates a cache over store with the given time-to-live.
func NewTTLCache(store Store, ttl time.Duration) *TTLCache {
	return &TTLCache{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (c *TTLCache) WithClock(now func() time.Time) *TTLCache {
	c.now = now
	return c
}

// Key builds the cache key for a resource owned by username.
func Key(resource, username string) string {
	return resource + "_" + username
}

// Get decodes the entry stored under key into dst. It returns false when
// there is no entry, the entry is malformed, or it has expired.
func (c *TTLCache) Get(key string, dst any) bool {
	raw, found, err := c.store.Get(key)
	if err != nil {
		logger.WithError(err).WithField("key", key).Debugf("cache read failed")
		return false
	}
	if !found {
		return false
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil || len(entry.Value) == 0 {
		logger.WithField("key", key).Debugf("ignoring malformed cache entry")
		return false
	}
	if entry.Expired(c.now(), c.ttl) {
		return false
	}

	if err := json.Unmarshal(entry.Value, dst); err != nil {
		logger.WithError(err).WithField("key", key).Debugf("cache entry does not fit destination")
		return false
	}
	return true
}

// Set stores value under key. Failures are logged and dropped.
func (c *TTLCache) Set(key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		logger.WithError(err).WithField("key", key).Debugf("cache value not serializable")
		return
	}

	raw, err := json.Marshal(models.NewCacheEntry(key, payload, c.now()))
	if err != nil {
		logger.WithError(err).WithField("key", key).Debugf("cache entry not serializable")
		return
	}

	if err := c.store.Set(key, raw); err != nil {
		logger.WithError(err).WithField("key", key).Debugf("cache write failed")
	}
}

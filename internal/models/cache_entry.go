package models

import (
	"encoding/json"
	"time"
)

// CacheEntry is the stored form of a cached payload.
type CacheEntry struct {
	Key      string          `json:"-"`
	StoredAt time.Time       `json:"-"`
	Value    json.RawMessage `json:"-"`
}

type cacheEntryWire struct {
	StoredAt int64           `json:"storedAt"`
	Value    json.RawMessage `json:"value"`
}

// NewCacheEntry wraps value for storage under key at the given time.
func NewCacheEntry(key string, value json.RawMessage, storedAt time.Time) *CacheEntry {
	return &CacheEntry{
		Key:      key,
		StoredAt: storedAt,
		Value:    value,
	}
}

// Expired reports whether more than ttl has passed since the entry was stored.
func (e *CacheEntry) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.StoredAt) > ttl
}

// MarshalJSON encodes the entry as {"storedAt": <unix millis>, "value": ...}.
func (e *CacheEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(cacheEntryWire{
		StoredAt: e.StoredAt.UnixMilli(),
		Value:    e.Value,
	})
}

func (e *CacheEntry) UnmarshalJSON(data []byte) error {
	var wire cacheEntryWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	e.StoredAt = time.UnixMilli(wire.StoredAt)
	e.Value = wire.Value
	return nil
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheEntryWireFormat(t *testing.T) {
	storedAt := time.UnixMilli(1700000000123)
	entry := NewCacheEntry("repos_u1", json.RawMessage(`[{"name":"a"}]`), storedAt)

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"storedAt":1700000000123,"value":[{"name":"a"}]}`, string(data))

	var decoded CacheEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.StoredAt.Equal(storedAt))
	assert.JSONEq(t, `[{"name":"a"}]`, string(decoded.Value))
}

func TestCacheEntryExpired(t *testing.T) {
	storedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	entry := NewCacheEntry("k", json.RawMessage(`1`), storedAt)
	ttl := 30 * time.Minute

	assert.False(t, entry.Expired(storedAt, ttl))
	assert.False(t, entry.Expired(storedAt.Add(ttl), ttl), "exactly at the TTL is still fresh")
	assert.True(t, entry.Expired(storedAt.Add(ttl+time.Millisecond), ttl))
}

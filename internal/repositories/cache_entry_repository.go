package repositories

import (
	"database/sql"
	"errors"
	"time"
)

// CacheEntryRepository is a cache.Store backed by the cache_entries table.
type CacheEntryRepository struct {
	db *sql.DB
}

func NewCacheEntryRepository(db *sql.DB) *CacheEntryRepository {
	return &CacheEntryRepository{db: db}
}

// Get retrieves the payload stored under key
func (r *CacheEntryRepository) Get(key string) ([]byte, bool, error) {
	query := `SELECT payload FROM cache_entries WHERE key = ?`

	var payload []byte
	err := r.db.QueryRow(query, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return payload, true, nil
}

// Set inserts or replaces the payload stored under key
func (r *CacheEntryRepository) Set(key string, payload []byte) error {
	query := `
		INSERT INTO cache_entries (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, key, payload, time.Now())
	return err
}

// Count returns how many keys are stored
func (r *CacheEntryRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM cache_entries`).Scan(&count)
	return count, err
}

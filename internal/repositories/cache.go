package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vibecheck/internal/shared"
)

// DefaultTTL matches the upstream revalidation window of the fetch layer.
const DefaultTTL = 5 * time.Minute

// Cache is a SQLite-backed fetch cache. Entries are JSON payloads keyed by
// (kind, id) and expire after a fixed TTL.
type Cache struct {
	mu  sync.Mutex
	db  *sql.DB
	ttl time.Duration
	log *log.Logger
}

// NewCache creates the fetch_cache table if needed and returns a cache with
// the given TTL (DefaultTTL when zero).
func NewCache(db *sql.DB, ttl time.Duration, logger *log.Logger) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	schema := `CREATE TABLE IF NOT EXISTS fetch_cache (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		key TEXT NOT NULL,
		payload TEXT NOT NULL,
		expires_at INTEGER NOT NULL,
		UNIQUE(kind, key)
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create fetch_cache table: %w", err)
	}

	return &Cache{db: db, ttl: ttl, log: logger}, nil
}

// Get loads a live cache entry into v, reporting whether one was found.
// Decode failures are treated as misses.
func (c *Cache) Get(kind, key string, v any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	var payload string
	err := c.db.QueryRow(
		"SELECT payload FROM fetch_cache WHERE kind = ? AND key = ? AND expires_at > ?",
		kind, key, time.Now().UnixMilli()).Scan(&payload)
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(payload), v); err != nil {
		if c.log != nil {
			c.log.Warn("discarding undecodable cache entry", "kind", kind, "key", key, "error", err)
		}
		return false
	}

	return true
}

// Put stores v as a JSON payload under (kind, key), replacing any previous
// entry.
func (c *Cache) Put(kind, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache payload: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err = c.db.Exec(
		`INSERT INTO fetch_cache (id, kind, key, payload, expires_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(kind, key) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at`,
		shared.GenerateID(), kind, key, string(payload), time.Now().Add(c.ttl).UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}

	return nil
}

// Purge removes expired entries and returns the number discarded.
func (c *Cache) Purge() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.db.Exec("DELETE FROM fetch_cache WHERE expires_at <= ?", time.Now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}

	return res.RowsAffected()
}

package limiter

import (
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// SQLStore persists windows in a SQLite table so counters survive restarts.
//
// A single connection-level mutex serializes writes; SQLite's own locking
// handles the rest.
type SQLStore struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLStore creates the rate_windows table if needed and returns a store
// over the given database.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	schema := `CREATE TABLE IF NOT EXISTS rate_windows (
		key TEXT PRIMARY KEY,
		count INTEGER NOT NULL,
		reset_time INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create rate_windows table: %w", err)
	}

	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(key string) (Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	var reset int64
	err := s.db.QueryRow("SELECT count, reset_time FROM rate_windows WHERE key = ?", key).
		Scan(&count, &reset)
	if err != nil {
		return Window{}, false
	}

	return Window{Count: count, ResetTime: time.UnixMilli(reset)}, true
}

func (s *SQLStore) Put(key string, w Window) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO rate_windows (key, count, reset_time) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET count = excluded.count, reset_time = excluded.reset_time`,
		key, w.Count, w.ResetTime.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to persist window: %w", err)
	}
	return nil
}

func (s *SQLStore) DeleteExpired(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM rate_windows WHERE reset_time < ?", now.UnixMilli()); err != nil {
		return fmt.Errorf("failed to sweep expired windows: %w", err)
	}
	return nil
}

// Package limiter implements fixed-window request counting keyed by an
// opaque client identifier.
//
// Each key accumulates a count inside a window; the first request of a fresh
// or expired window resets the count, and requests beyond the configured
// maximum are rejected until the window lapses. Counters live behind the
// [Store] interface with in-memory and SQLite-backed implementations, and a
// background sweep discards expired windows to bound storage.
package limiter

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Config bounds one key's request rate.
type Config struct {
	MaxRequests int
	Window      time.Duration
}

// Window is one key's counter state.
type Window struct {
	Count     int
	ResetTime time.Time
}

// Store persists per-key windows. Implementations must make each operation
// atomic per key so a sweep cannot race a live increment into data loss.
type Store interface {
	// Get returns the window for key, reporting whether one exists.
	Get(key string) (Window, bool)
	// Put replaces the window for key.
	Put(key string, w Window) error
	// DeleteExpired discards windows whose reset time precedes now.
	DeleteExpired(now time.Time) error
}

// Limiter answers whether a keyed request exceeds its window budget.
type Limiter struct {
	store Store
	log   *log.Logger
}

// New creates a Limiter over the given store. A nil store defaults to an
// in-memory one.
func New(store Store, logger *log.Logger) *Limiter {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Limiter{store: store, log: logger}
}

// Allowed records a request for key and reports whether it fits the window
// budget.
//
// The first request of a fresh or expired window starts a new count. Later
// requests increment the count before the comparison, so the request that
// trips the limit is still recorded.
func (l *Limiter) Allowed(key string, cfg Config) bool {
	now := time.Now()

	w, ok := l.store.Get(key)
	if !ok || now.After(w.ResetTime) {
		if err := l.store.Put(key, Window{Count: 1, ResetTime: now.Add(cfg.Window)}); err != nil && l.log != nil {
			l.log.Warn("failed to persist rate limit window", "key", key, "error", err)
		}
		return true
	}

	w.Count++
	if err := l.store.Put(key, w); err != nil && l.log != nil {
		l.log.Warn("failed to persist rate limit window", "key", key, "error", err)
	}

	if w.Count > cfg.MaxRequests {
		if l.log != nil {
			l.log.Warn("rate limit exceeded", "key", key, "count", w.Count)
		}
		return false
	}

	return true
}

// Sweep periodically discards expired windows until ctx is cancelled.
func (l *Limiter) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.store.DeleteExpired(time.Now()); err != nil && l.log != nil {
				l.log.Warn("rate limit sweep failed", "error", err)
			}
		}
	}
}

// MemoryStore keeps windows in a mutex-guarded map.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]Window
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]Window)}
}

func (s *MemoryStore) Get(key string) (Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[key]
	return w, ok
}

func (s *MemoryStore) Put(key string, w Window) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[key] = w
	return nil
}

func (s *MemoryStore) DeleteExpired(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, w := range s.windows {
		if now.After(w.ResetTime) {
			delete(s.windows, key)
		}
	}
	return nil
}

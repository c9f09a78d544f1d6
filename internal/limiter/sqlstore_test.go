package limiter

import (
	"testing"
	"time"

	"github.com/desertthunder/vibecheck/internal/shared"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestSQLStore(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store := newTestStore(t)
		reset := time.Now().Add(time.Minute).Truncate(time.Millisecond)

		if err := store.Put("client", Window{Count: 3, ResetTime: reset}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		w, ok := store.Get("client")
		if !ok {
			t.Fatal("expected a window")
		}
		if w.Count != 3 {
			t.Errorf("expected count 3, got %d", w.Count)
		}
		if !w.ResetTime.Equal(reset) {
			t.Errorf("expected reset %v, got %v", reset, w.ResetTime)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		store := newTestStore(t)
		if _, ok := store.Get("nobody"); ok {
			t.Error("expected no window for unknown key")
		}
	})

	t.Run("put overwrites", func(t *testing.T) {
		store := newTestStore(t)
		reset := time.Now().Add(time.Minute)

		store.Put("client", Window{Count: 1, ResetTime: reset})
		store.Put("client", Window{Count: 2, ResetTime: reset})

		if w, _ := store.Get("client"); w.Count != 2 {
			t.Errorf("expected count 2, got %d", w.Count)
		}
	})

	t.Run("delete expired", func(t *testing.T) {
		store := newTestStore(t)
		now := time.Now()

		store.Put("stale", Window{Count: 5, ResetTime: now.Add(-time.Minute)})
		store.Put("live", Window{Count: 2, ResetTime: now.Add(time.Minute)})

		if err := store.DeleteExpired(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, ok := store.Get("stale"); ok {
			t.Error("expected stale window to be discarded")
		}
		if _, ok := store.Get("live"); !ok {
			t.Error("expected live window to survive")
		}
	})

	t.Run("drives the limiter", func(t *testing.T) {
		lim := New(newTestStore(t), nil)
		cfg := Config{MaxRequests: 2, Window: time.Minute}

		if !lim.Allowed("client", cfg) || !lim.Allowed("client", cfg) {
			t.Fatal("expected the budget to be allowed")
		}
		if lim.Allowed("client", cfg) {
			t.Error("expected the third request to be rejected")
		}
	})
}

package limiter

import (
	"context"
	"testing"
	"time"
)

func TestLimiterAllowed(t *testing.T) {
	cfg := Config{MaxRequests: 3, Window: time.Minute}

	t.Run("allows exactly the window budget", func(t *testing.T) {
		lim := New(nil, nil)

		for i := 0; i < cfg.MaxRequests; i++ {
			if !lim.Allowed("client", cfg) {
				t.Fatalf("request %d should be allowed", i+1)
			}
		}
		if lim.Allowed("client", cfg) {
			t.Error("request beyond the budget should be rejected")
		}
	})

	t.Run("rejected requests still count", func(t *testing.T) {
		store := NewMemoryStore()
		lim := New(store, nil)

		for i := 0; i < cfg.MaxRequests+2; i++ {
			lim.Allowed("client", cfg)
		}

		w, ok := store.Get("client")
		if !ok {
			t.Fatal("expected a window")
		}
		if w.Count != cfg.MaxRequests+2 {
			t.Errorf("expected count %d, got %d", cfg.MaxRequests+2, w.Count)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		lim := New(nil, nil)

		for i := 0; i < cfg.MaxRequests; i++ {
			lim.Allowed("alice", cfg)
		}
		if !lim.Allowed("bob", cfg) {
			t.Error("another key should start with a fresh window")
		}
	})

	t.Run("expired window resets", func(t *testing.T) {
		store := NewMemoryStore()
		lim := New(store, nil)

		for i := 0; i < cfg.MaxRequests+1; i++ {
			lim.Allowed("client", cfg)
		}
		if lim.Allowed("client", cfg) {
			t.Fatal("expected exhausted window")
		}

		// Force the window into the past
		store.Put("client", Window{Count: 99, ResetTime: time.Now().Add(-time.Second)})

		if !lim.Allowed("client", cfg) {
			t.Error("expected a fresh window after expiry")
		}
		if w, _ := store.Get("client"); w.Count != 1 {
			t.Errorf("expected reset count 1, got %d", w.Count)
		}
	})
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	store := NewMemoryStore()
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
}

func TestLimiterSweep(t *testing.T) {
	store := NewMemoryStore()
	lim := New(store, nil)

	store.Put("stale", Window{Count: 3, ResetTime: time.Now().Add(-time.Minute)})
	store.Put("live", Window{Count: 1, ResetTime: time.Now().Add(time.Minute)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		lim.Sweep(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for {
		if _, ok := store.Get("stale"); !ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("stale window was never swept")
		}
		time.Sleep(time.Millisecond)
	}

	if _, ok := store.Get("live"); !ok {
		t.Error("expected live window to survive the sweep")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("sweep did not stop after cancellation")
	}
}

package repositories

import (
	"testing"
	"time"

	"github.com/desertthunder/vibecheck/internal/models"
	"github.com/desertthunder/vibecheck/internal/shared"
)

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cache, err := NewCache(db, ttl, nil)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	return cache
}

func TestCache(t *testing.T) {
	t.Run("round trip is lossless", func(t *testing.T) {
		cache := newTestCache(t, time.Minute)

		thumb := "https://example.com/t.jpg"
		original := []models.Track{
			{ID: "abc", Title: "Song", Artist: "Artist", Thumbnail: &thumb},
			{ID: "def", Title: "Other", Artist: "Someone"},
		}

		if err := cache.Put("playlist", "PL123", original); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got []models.Track
		if !cache.Get("playlist", "PL123", &got) {
			t.Fatal("expected a cache hit")
		}

		if len(got) != 2 || got[0].ID != "abc" {
			t.Errorf("unexpected payload: %+v", got)
		}
		if got[0].Thumbnail == nil || *got[0].Thumbnail != thumb {
			t.Errorf("thumbnail not preserved: %v", got[0].Thumbnail)
		}
		if got[1].Thumbnail != nil {
			t.Errorf("expected nil thumbnail, got %v", got[1].Thumbnail)
		}
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		cache := newTestCache(t, time.Minute)

		var got []models.Track
		if cache.Get("playlist", "missing", &got) {
			t.Error("expected a miss")
		}
	})

	t.Run("kinds are namespaced", func(t *testing.T) {
		cache := newTestCache(t, time.Minute)

		if err := cache.Put("playlist", "same-key", "playlist payload"); err != nil {
			t.Fatal(err)
		}
		if err := cache.Put("artist", "same-key", "artist payload"); err != nil {
			t.Fatal(err)
		}

		var got string
		if !cache.Get("artist", "same-key", &got) || got != "artist payload" {
			t.Errorf("expected artist payload, got %q", got)
		}
	})

	t.Run("put replaces previous entry", func(t *testing.T) {
		cache := newTestCache(t, time.Minute)

		cache.Put("playlist", "PL123", "old")
		cache.Put("playlist", "PL123", "new")

		var got string
		if !cache.Get("playlist", "PL123", &got) || got != "new" {
			t.Errorf("expected new payload, got %q", got)
		}
	})

	t.Run("expired entries miss", func(t *testing.T) {
		cache := newTestCache(t, time.Millisecond)

		if err := cache.Put("playlist", "PL123", "stale soon"); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)

		var got string
		if cache.Get("playlist", "PL123", &got) {
			t.Error("expected expired entry to miss")
		}
	})

	t.Run("purge removes only expired rows", func(t *testing.T) {
		cache := newTestCache(t, time.Millisecond)

		cache.Put("playlist", "stale", "stale")
		time.Sleep(5 * time.Millisecond)

		cache.ttl = time.Minute
		cache.Put("playlist", "live", "live")

		purged, err := cache.Purge()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if purged != 1 {
			t.Errorf("expected 1 purged row, got %d", purged)
		}

		var got string
		if !cache.Get("playlist", "live", &got) {
			t.Error("expected live entry to survive")
		}
	})
}

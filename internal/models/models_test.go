package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTrackValidate(t *testing.T) {
	tc := []struct {
		name    string
		track   Track
		wantErr bool
	}{
		{
			name:  "complete track",
			track: Track{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up", Artist: "Rick Astley"},
		},
		{
			name:  "empty title and artist are allowed",
			track: Track{ID: "abc123def45"},
		},
		{
			name:    "missing id",
			track:   Track{Title: "Untitled", Artist: "Unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.track.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTrackJSON(t *testing.T) {
	t.Run("nil thumbnail serializes as null", func(t *testing.T) {
		data, err := json.Marshal(Track{ID: "abc", Title: "Song", Artist: "Artist"})
		if err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(string(data), `"thumbnail":null`) {
			t.Errorf("expected explicit null thumbnail, got %s", data)
		}
	})

	t.Run("optional fields are omitted when empty", func(t *testing.T) {
		data, err := json.Marshal(Track{ID: "abc", Title: "Song", Artist: "Artist"})
		if err != nil {
			t.Fatal(err)
		}

		for _, key := range []string{"artistId", "album", "duration"} {
			if strings.Contains(string(data), key) {
				t.Errorf("expected %s to be omitted, got %s", key, data)
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		thumb := "https://example.com/t.jpg"
		original := Track{
			ID:        "abc123",
			Title:     "Song",
			Artist:    "Artist One, Artist Two",
			ArtistID:  "UC123",
			Album:     "Album",
			Duration:  "3:45",
			Thumbnail: &thumb,
		}

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatal(err)
		}

		var decoded Track
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatal(err)
		}

		if decoded.ID != original.ID || decoded.Artist != original.Artist {
			t.Errorf("round trip mismatch: %+v", decoded)
		}
		if decoded.Thumbnail == nil || *decoded.Thumbnail != thumb {
			t.Errorf("expected thumbnail %s, got %v", thumb, decoded.Thumbnail)
		}
	})
}

package innertube

import (
	"encoding/json"
	"testing"
)

func textFrom(t *testing.T, raw string) *Text {
	t.Helper()
	var txt Text
	if err := json.Unmarshal([]byte(raw), &txt); err != nil {
		t.Fatalf("failed to unmarshal text: %v", err)
	}
	return &txt
}

func TestExtractText(t *testing.T) {
	tc := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain string", raw: `"Bohemian Rhapsody"`, want: "Bohemian Rhapsody"},
		{name: "text object", raw: `{"text": "Queen"}`, want: "Queen"},
		{name: "runs object", raw: `{"runs": [{"text": "A Night "}, {"text": "at the Opera"}]}`, want: "A Night at the Opera"},
		{name: "empty runs", raw: `{"runs": []}`, want: ""},
		{name: "empty object", raw: `{}`, want: ""},
		{name: "unknown shape", raw: `42`, want: ""},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractText(textFrom(t, tt.raw)); got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("nil text", func(t *testing.T) {
		if got := ExtractText(nil); got != "" {
			t.Errorf("ExtractText(nil) = %q, want empty", got)
		}
	})
}

func TestSanitizeTrack(t *testing.T) {
	t.Run("id fallback chain", func(t *testing.T) {
		tc := []struct {
			name string
			item Item
			want string
		}{
			{
				name: "video_id wins",
				item: Item{LegacyVideoID: "legacy123XY", VideoID: "video123XYZ", ID: "plain123XYZ"},
				want: "legacy123XY",
			},
			{
				name: "videoId second",
				item: Item{VideoID: "video123XYZ", ID: "plain123XYZ"},
				want: "video123XYZ",
			},
			{
				name: "id last",
				item: Item{ID: "plain123XYZ"},
				want: "plain123XYZ",
			},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				track, ok := SanitizeTrack(nil, tt.item)
				if !ok {
					t.Fatal("expected track to sanitize")
				}
				if track.ID != tt.want {
					t.Errorf("expected id %s, got %s", tt.want, track.ID)
				}
			})
		}
	})

	t.Run("missing id drops the record", func(t *testing.T) {
		item := Item{Title: &Text{Plain: "Orphan Song"}}
		if _, ok := SanitizeTrack(nil, item); ok {
			t.Error("expected record without id to be dropped")
		}
	})

	t.Run("structured artists join with comma", func(t *testing.T) {
		item := Item{
			VideoID: "abc123def45",
			Artists: []Artist{
				{Name: "Daft Punk", ChannelID: "UCdaft"},
				{Name: "Pharrell Williams"},
			},
		}

		track, ok := SanitizeTrack(nil, item)
		if !ok {
			t.Fatal("expected track to sanitize")
		}
		if track.Artist != "Daft Punk, Pharrell Williams" {
			t.Errorf("expected joined artists, got %q", track.Artist)
		}
		if track.ArtistID != "UCdaft" {
			t.Errorf("expected primary artist channel id, got %q", track.ArtistID)
		}
	})

	t.Run("byline fallback chain", func(t *testing.T) {
		item := Item{
			VideoID:     "abc123def45",
			ShortByline: &Text{Plain: "Short Byline Artist"},
			Author:      &Text{Plain: "Author Artist"},
		}

		track, _ := SanitizeTrack(nil, item)
		if track.Artist != "Short Byline Artist" {
			t.Errorf("expected short_byline to win over author, got %q", track.Artist)
		}
	})

	t.Run("duration falls back to length", func(t *testing.T) {
		item := Item{
			VideoID: "abc123def45",
			Length:  &Text{Plain: "4:20"},
		}

		track, _ := SanitizeTrack(nil, item)
		if track.Duration != "4:20" {
			t.Errorf("expected duration 4:20, got %q", track.Duration)
		}
	})

	t.Run("idempotent on already clean input", func(t *testing.T) {
		item := Item{
			VideoID: "abc123def45",
			Title:   &Text{Plain: "Clean Song"},
			Artists: []Artist{{Name: "Clean Artist", ID: "UC1"}},
		}

		first, _ := SanitizeTrack(nil, item)
		second, _ := SanitizeTrack(nil, item)
		if first.ID != second.ID || first.Title != second.Title || first.Artist != second.Artist {
			t.Errorf("sanitization not stable: %+v vs %+v", first, second)
		}
	})
}

func TestResolveThumbnail(t *testing.T) {
	t.Run("flat array prefers last entry", func(t *testing.T) {
		item := Item{
			VideoID: "abc123def45",
			Thumbnails: []Thumbnail{
				{URL: "small.jpg", Width: 60},
				{URL: "large.jpg", Width: 544},
			},
		}

		track, _ := SanitizeTrack(nil, item)
		if track.Thumbnail == nil || *track.Thumbnail != "large.jpg" {
			t.Errorf("expected large.jpg, got %v", track.Thumbnail)
		}
	})

	t.Run("nested containers decode", func(t *testing.T) {
		raw := `{
			"videoId": "abc123def45",
			"thumbnail": {"contents": [{"image": {"sources": [{"url": "nested.jpg"}]}}]}
		}`

		var item Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			t.Fatal(err)
		}

		track, _ := SanitizeTrack(nil, item)
		if track.Thumbnail == nil || *track.Thumbnail != "nested.jpg" {
			t.Errorf("expected nested.jpg, got %v", track.Thumbnail)
		}
	})

	t.Run("bare array inside thumbnail field", func(t *testing.T) {
		raw := `{"videoId": "abc123def45", "thumbnail": [{"url": "bare.jpg"}]}`

		var item Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			t.Fatal(err)
		}

		track, _ := SanitizeTrack(nil, item)
		if track.Thumbnail == nil || *track.Thumbnail != "bare.jpg" {
			t.Errorf("expected bare.jpg, got %v", track.Thumbnail)
		}
	})

	t.Run("no thumbnail yields nil", func(t *testing.T) {
		track, _ := SanitizeTrack(nil, Item{VideoID: "abc123def45"})
		if track.Thumbnail != nil {
			t.Errorf("expected nil thumbnail, got %v", track.Thumbnail)
		}
	})
}

func TestParsePlaylistID(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "watch URL with list param",
			input: "https://music.youtube.com/playlist?list=PLabc123def456",
			want:  "PLabc123def456",
			ok:    true,
		},
		{
			name:  "bare ID",
			input: "PLabc123def456",
			want:  "PLabc123def456",
			ok:    true,
		},
		{
			name:  "too short",
			input: "PL123",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
		{
			name:  "invalid characters",
			input: "PL abc!123 def",
			ok:    false,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePlaylistID(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParsePlaylistID(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParsePlaylistID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

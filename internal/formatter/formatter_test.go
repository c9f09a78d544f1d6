package formatter

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/vibecheck/internal/models"
	"github.com/desertthunder/vibecheck/internal/shared"
)

func sampleReport() *Report {
	return &Report{
		Metadata: models.PlaylistMetadata{ID: "PLtest123456", Title: "Lofi Mix", TrackCount: 3},
		Tracks: []models.Track{
			{ID: "a", Title: "Morning lofi", Artist: "Artist A", Album: "Dawn", Duration: "2:30"},
			{ID: "b", Title: "Evening lofi", Artist: "Artist B", Duration: "3:10"},
			{ID: "c", Title: "Pure metal", Artist: "Artist C", Duration: "4:00"},
		},
		Analysis: models.PlaylistAnalysis{
			CohesionScore: 48,
			Details:       models.VibeDetails{Text: "Moderately Cohesive", Color: "#ff9800"},
			DominantVibes: models.VibeVector{Energy: 0.35, Mood: 0.44, Dance: 0.32},
			Outliers: []models.Track{
				{ID: "c", Title: "Pure metal", Artist: "Artist C"},
			},
		},
		VibeTags: []models.VibeTag{
			{Label: "Chill & Lofi", Color: "#9c27b0", Score: 100},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 records, got %d lines", len(lines))
	}
	if lines[0] != "ID,Title,Artist,Album,Duration,Outlier" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "false") {
		t.Errorf("expected first track not flagged, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[3], "true") {
		t.Errorf("expected outlier flagged, got %q", lines[3])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(data)
	for _, want := range []string{
		"# Lofi Mix",
		"**Cohesion**: 48/100 (Moderately Cohesive)",
		"## Vibes",
		"- Chill & Lofi (100)",
		"## Outliers",
		"- Artist C - Pure metal",
		"1. Artist A - Morning lofi (Dawn)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("markdown missing %q:\n%s", want, text)
		}
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "Playlist: Lofi Mix") {
		t.Errorf("text missing playlist title:\n%s", text)
	}
	if !strings.Contains(text, "Cohesion: 48/100 (Moderately Cohesive)") {
		t.Errorf("text missing cohesion line:\n%s", text)
	}
}

func TestExportToJSON(t *testing.T) {
	data, err := ExportToJSON(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported JSON does not decode: %v", err)
	}
	if decoded.Analysis.CohesionScore != 48 || len(decoded.Tracks) != 3 {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestWriteReport(t *testing.T) {
	t.Run("writes to the given path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.md")

		got, err := WriteReport(sampleReport(), "md", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != path {
			t.Errorf("expected path %s, got %s", path, got)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("report file should exist: %v", err)
		}
	})

	t.Run("defaults the path to playlist id and extension", func(t *testing.T) {
		tmpDir := t.TempDir()
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(tmpDir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Chdir(cwd) })

		got, err := WriteReport(sampleReport(), "csv", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "PLtest123456.csv" {
			t.Errorf("expected default path PLtest123456.csv, got %s", got)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := WriteReport(sampleReport(), "xml", "")
		if err == nil {
			t.Fatal("expected error for unsupported format")
		}
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected invalid input error, got %v", err)
		}
	})
}

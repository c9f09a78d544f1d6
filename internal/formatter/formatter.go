// package formatter provides functions to export analysis reports to various formats (CSV, Markdown, JSON, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/desertthunder/vibecheck/internal/models"
	"github.com/desertthunder/vibecheck/internal/shared"
)

// Report bundles everything an analysis run produced for one playlist.
type Report struct {
	Metadata        models.PlaylistMetadata `json:"metadata"`
	Tracks          []models.Track          `json:"tracks"`
	Analysis        models.PlaylistAnalysis `json:"analysis"`
	VibeTags        []models.VibeTag        `json:"vibeTags"`
	Recommendations []models.Track          `json:"recommendations,omitempty"`
}

// ExportToCSV converts a report's track list to CSV with columns: ID, Title, Artist, Album, Duration, Outlier
func ExportToCSV(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Album", "Duration", "Outlier"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	outliers := make(map[string]bool, len(report.Analysis.Outliers))
	for _, t := range report.Analysis.Outliers {
		outliers[t.ID] = true
	}

	for _, track := range report.Tracks {
		record := []string{
			track.ID,
			track.Title,
			track.Artist,
			track.Album,
			track.Duration,
			fmt.Sprintf("%t", outliers[track.ID]),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a report to Markdown with the cohesion summary, tags, outliers, and track list
func ExportToMarkdown(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", report.Metadata.Title))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n", len(report.Tracks)))
	buf.WriteString(fmt.Sprintf("**Cohesion**: %d/100 (%s)\n", report.Analysis.CohesionScore, report.Analysis.Details.Text))
	buf.WriteString(fmt.Sprintf("**Dominant vibe**: energy %.2f, mood %.2f, dance %.2f\n\n",
		report.Analysis.DominantVibes.Energy,
		report.Analysis.DominantVibes.Mood,
		report.Analysis.DominantVibes.Dance))

	if len(report.VibeTags) > 0 {
		buf.WriteString("## Vibes\n\n")
		for _, tag := range report.VibeTags {
			buf.WriteString(fmt.Sprintf("- %s (%d)\n", tag.Label, tag.Score))
		}
		buf.WriteString("\n")
	}

	if len(report.Analysis.Outliers) > 0 {
		buf.WriteString("## Outliers\n\n")
		for _, track := range report.Analysis.Outliers {
			buf.WriteString(fmt.Sprintf("- %s - %s\n", track.Artist, track.Title))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("## Tracks\n\n")
	for i, track := range report.Tracks {
		albumPart := ""
		if track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s\n", i+1, track.Artist, track.Title, albumPart))
	}

	if len(report.Recommendations) > 0 {
		buf.WriteString("\n## Recommended\n\n")
		for i, track := range report.Recommendations {
			buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.Artist, track.Title))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a report to plain text format
func ExportToText(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", report.Metadata.Title))
	buf.WriteString(fmt.Sprintf("Cohesion: %d/100 (%s)\n", report.Analysis.CohesionScore, report.Analysis.Details.Text))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(report.Tracks)))

	for i, track := range report.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.Artist, track.Title))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a report to indented JSON, lossless for the wire shapes
func ExportToJSON(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// WriteReport exports a report in the named format (csv, md, json, text) to the given path.
//
// The path defaults to {playlist id}.{ext} in the working directory.
func WriteReport(report *Report, format, path string) (string, error) {
	var data []byte
	var err error
	var ext string

	switch format {
	case "csv":
		data, err = ExportToCSV(report)
		ext = "csv"
	case "md", "markdown":
		data, err = ExportToMarkdown(report)
		ext = "md"
	case "json":
		data, err = ExportToJSON(report)
		ext = "json"
	case "text", "txt", "":
		data, err = ExportToText(report)
		ext = "txt"
	default:
		return "", fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidInput, format)
	}
	if err != nil {
		return "", err
	}

	if path == "" {
		path = fmt.Sprintf("%s.%s", report.Metadata.ID, ext)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

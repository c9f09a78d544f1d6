package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vibecheck/internal/formatter"
	"github.com/desertthunder/vibecheck/internal/innertube"
	"github.com/desertthunder/vibecheck/internal/shared"
	"github.com/desertthunder/vibecheck/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Analyze fetches a playlist, computes its vibe profile, and prints or exports the result.
func (r *Runner) Analyze(ctx context.Context, cmd *cli.Command) error {
	input := cmd.StringArg("playlist")
	if input == "" {
		return fmt.Errorf("%w: playlist ID or URL is required", shared.ErrMissingArgument)
	}

	playlistID, ok := innertube.ParsePlaylistID(input)
	if !ok {
		return fmt.Errorf("%w: %q is not a playlist ID or URL", shared.ErrInvalidArgument, input)
	}

	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	format := cmd.String("format")
	outputPath := cmd.String("output")

	r.logger.Info("analyzing playlist", "id", playlistID)

	result, err := r.client.Playlist(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	analysis, tags := r.analyzer.Analyze(result.Tracks)

	report := &formatter.Report{
		Metadata: result.Metadata,
		Tracks:   result.Tracks,
		Analysis: analysis,
		VibeTags: tags,
	}

	if cmd.Bool("recommend") {
		seeds := make([]string, 0, tasks.MaxSeeds)
		exclude := make([]string, len(result.Tracks))
		for i, track := range result.Tracks {
			exclude[i] = track.ID
			if len(seeds) < tasks.MaxSeeds {
				seeds = append(seeds, track.ID)
			}
		}

		recommendations, err := r.recs.RecommendMulti(ctx, seeds, exclude)
		if err != nil {
			r.logger.Warn("recommendations unavailable", "error", err)
		} else {
			report.Recommendations = recommendations
		}
	}

	if format != "" {
		path, err := formatter.WriteReport(report, format, outputPath)
		if err != nil {
			return err
		}
		r.logger.Info("report written", "path", path, "format", format)
		return nil
	}

	if useJSON {
		return r.writeJSON(report, pretty)
	}

	r.writePlain("%s (%d tracks)\n", result.Metadata.Title, result.Metadata.TrackCount)
	r.writePlainln("Cohesion: %d/100 (%s)", analysis.CohesionScore, analysis.Details.Text)
	r.writePlain("Energy: %.2f  Mood: %.2f  Dance: %.2f\n",
		analysis.DominantVibes.Energy, analysis.DominantVibes.Mood, analysis.DominantVibes.Dance)

	if len(tags) > 0 {
		r.writePlain("\nVibes:\n")
		for _, tag := range tags {
			r.writePlain("  %s (%d)\n", tag.Label, tag.Score)
		}
	}

	if len(analysis.Outliers) > 0 {
		r.writePlain("\nOutliers:\n")
		for _, track := range analysis.Outliers {
			r.writePlain("  %s - %s\n", track.Title, track.Artist)
		}
	}

	if len(report.Recommendations) > 0 {
		r.writePlain("\nRecommended:\n")
		for _, track := range report.Recommendations {
			r.writePlain("  %s - %s\n", track.Title, track.Artist)
		}
	}

	return nil
}

// Recommend aggregates recommendations from the given seed track IDs.
func (r *Runner) Recommend(ctx context.Context, cmd *cli.Command) error {
	seeds := cmd.StringSlice("seed")
	excludes := cmd.StringSlice("exclude")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if len(seeds) == 0 {
		return fmt.Errorf("%w: at least one seed track ID is required", shared.ErrMissingArgument)
	}

	r.logger.Info("fetching recommendations", "seeds", len(seeds), "excluded", len(excludes))

	tracks, err := r.recs.RecommendMulti(ctx, seeds, excludes)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(tracks, pretty)
	}

	if len(tracks) == 0 {
		r.writePlain("No recommendations found.\n")
		return nil
	}

	r.writePlain("Found %d recommendations:\n\n", len(tracks))
	for i, track := range tracks {
		r.writePlain("%d. %s - %s [%s]\n", i+1, track.Title, track.Artist, track.ID)
	}

	return nil
}

// Artist fetches an artist page and prints the profile with top tracks.
func (r *Runner) Artist(ctx context.Context, cmd *cli.Command) error {
	artistID := cmd.StringArg("id")
	if artistID == "" {
		return fmt.Errorf("%w: artist ID is required", shared.ErrMissingArgument)
	}

	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("fetching artist", "id", artistID)

	artist, err := r.client.Artist(ctx, artistID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(artist, pretty)
	}

	r.writePlain("%s\n\n", artist.Name)
	r.writePlain("%s\n", artist.Bio)

	if len(artist.TopTracks) > 0 {
		r.writePlain("\nTop tracks:\n")
		for i, track := range artist.TopTracks {
			r.writePlain("%d. %s\n", i+1, track.Title)
		}
	}

	return nil
}

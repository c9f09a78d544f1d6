package ui

import (
	"github.com/desertthunder/vibecheck/internal/innertube"
	"github.com/desertthunder/vibecheck/internal/models"
)

// playlistFetchedMsg carries the fetched playlist or the fetch error.
type playlistFetchedMsg struct {
	result *innertube.PlaylistResult
	err    error
}

// recommendationsFetchedMsg carries aggregated recommendations or the error.
type recommendationsFetchedMsg struct {
	tracks []models.Track
	err    error
}

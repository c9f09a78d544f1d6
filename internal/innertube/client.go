package innertube

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vibecheck/internal/models"
	"github.com/desertthunder/vibecheck/internal/shared"
	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "http://127.0.0.1:8080"

// Cache is the optional fetch cache consulted before network calls.
//
// Implemented by repositories.Cache; lookups that miss or fail simply fall
// through to the proxy.
type Cache interface {
	Get(kind, id string, v any) bool
	Put(kind, id string, v any) error
}

// PlaylistResult bundles the normalized tracks and display metadata of one
// fetched playlist.
type PlaylistResult struct {
	Tracks   []models.Track          `json:"tracks"`
	Metadata models.PlaylistMetadata `json:"metadata"`
}

// Client fetches playlists, queues, and artist pages from the InnerTube
// proxy and normalizes their items.
//
// Safe for concurrent use; the underlying resty client is shared.
type Client struct {
	http  *resty.Client
	cache Cache
	retry shared.RetryOpts
	log   *log.Logger
}

// NewClient creates a proxy client for the given base URL.
func NewClient(baseURL string, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:  httpClient,
		retry: shared.DefaultRetryOpts(),
		log:   logger,
	}
}

// UseCache attaches a fetch cache consulted before network calls.
func (c *Client) UseCache(cache Cache) { c.cache = cache }

// SetRetryOpts overrides the backoff settings for provider calls.
func (c *Client) SetRetryOpts(opts shared.RetryOpts) { c.retry = opts }

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) { c.http.SetTimeout(d) }

// get performs one GET against the proxy, decoding into result, wrapped in
// retry-with-backoff.
func get[T any](ctx context.Context, c *Client, endpoint string) (*T, error) {
	return shared.WithRetry(ctx, c.log, func() (*T, error) {
		var result T
		resp, err := c.http.R().
			SetContext(ctx).
			SetResult(&result).
			Get(endpoint)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}

		if resp.StatusCode() == http.StatusNotFound {
			return nil, fmt.Errorf("%w: status %d", shared.ErrPlaylistNotFound, resp.StatusCode())
		}
		if resp.IsError() {
			return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode())
		}

		return &result, nil
	}, c.retry)
}

// Playlist fetches a playlist by ID and normalizes its items.
//
// Returns [shared.ErrInvalidResponse] when the proxy payload has no items
// field and [shared.ErrEmptyPlaylist] when no usable tracks remain after
// sanitization.
func (c *Client) Playlist(ctx context.Context, playlistID string) (*PlaylistResult, error) {
	var cached PlaylistResult
	if c.cache != nil && c.cache.Get("playlist", playlistID, &cached) {
		return &cached, nil
	}

	resp, err := get[playlistResponse](ctx, c, "/api/playlists/"+playlistID)
	if err != nil {
		return nil, err
	}

	if resp.Items == nil {
		if c.log != nil {
			c.log.Error("invalid playlist response", "playlist_id", playlistID)
		}
		return nil, fmt.Errorf("%w: missing playlist items", shared.ErrInvalidResponse)
	}

	tracks := sanitizeAll(c.log, *resp.Items)
	if len(tracks) == 0 {
		return nil, shared.ErrEmptyPlaylist
	}

	result := &PlaylistResult{
		Tracks:   tracks,
		Metadata: c.playlistMetadata(playlistID, resp, len(tracks)),
	}

	if c.cache != nil {
		if err := c.cache.Put("playlist", playlistID, result); err != nil && c.log != nil {
			c.log.Warn("failed to cache playlist", "playlist_id", playlistID, "error", err)
		}
	}

	return result, nil
}

func (c *Client) playlistMetadata(playlistID string, resp *playlistResponse, count int) models.PlaylistMetadata {
	title := ""
	var thumbnail *string

	if resp.Header != nil {
		title = ExtractText(resp.Header.Title)
		if n := len(resp.Header.Thumbnails); n > 0 {
			u := resp.Header.Thumbnails[n-1].URL
			thumbnail = &u
		}
	}
	if title == "" {
		title = resp.Title
	}
	if title == "" {
		title = "Unknown Playlist"
	}

	return models.PlaylistMetadata{
		ID:         playlistID,
		Title:      title,
		TrackCount: count,
		Thumbnail:  thumbnail,
	}
}

// UpNext fetches the watch queue seeded by a track and normalizes its items.
//
// Recommendations are optional enrichment: a structurally invalid payload
// logs a warning and degrades to an empty list instead of failing.
func (c *Client) UpNext(ctx context.Context, seedID string) ([]models.Track, error) {
	var cached []models.Track
	if c.cache != nil && c.cache.Get("upnext", seedID, &cached) {
		return cached, nil
	}

	resp, err := get[upNextResponse](ctx, c, "/api/next/"+seedID)
	if err != nil {
		return nil, err
	}

	if resp.Items == nil && resp.Contents == nil {
		if c.log != nil {
			c.log.Warn("invalid up-next response", "seed_id", seedID)
		}
		return []models.Track{}, nil
	}

	items := resp.Items
	if items == nil {
		items = resp.Contents
	}

	tracks := sanitizeAll(c.log, *items)
	if c.log != nil {
		c.log.Info("fetched recommendations", "seed_id", seedID, "count", len(tracks))
	}

	if c.cache != nil {
		if err := c.cache.Put("upnext", seedID, tracks); err != nil && c.log != nil {
			c.log.Warn("failed to cache recommendations", "seed_id", seedID, "error", err)
		}
	}

	return tracks, nil
}

// Artist fetches an artist page and assembles a profile with up to five top
// tracks, taken from the first section whose title mentions songs or top.
func (c *Client) Artist(ctx context.Context, artistID string) (*models.ArtistDetails, error) {
	var cached models.ArtistDetails
	if c.cache != nil && c.cache.Get("artist", artistID, &cached) {
		return &cached, nil
	}

	resp, err := get[artistResponse](ctx, c, "/api/artists/"+artistID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrArtistNotFound, err)
	}

	details := &models.ArtistDetails{
		Name:      "Unknown Artist",
		Bio:       "No biography available.",
		TopTracks: []models.Track{},
	}

	if resp.Header != nil {
		if name := ExtractText(resp.Header.Title); name != "" {
			details.Name = name
		}
		if bio := ExtractText(resp.Header.Description); bio != "" {
			details.Bio = bio
		}
		if len(resp.Header.Thumbnails) > 0 {
			u := resp.Header.Thumbnails[0].URL
			details.Thumbnail = &u
		}
	}

	for _, section := range resp.Sections {
		title := strings.ToLower(ExtractText(section.Title))
		if !strings.Contains(title, "songs") && !strings.Contains(title, "top") {
			continue
		}

		items := section.Items
		if len(items) == 0 {
			items = section.Contents
		}

		tracks := sanitizeAll(c.log, items)
		if len(tracks) > 5 {
			tracks = tracks[:5]
		}
		details.TopTracks = tracks
		break
	}

	if c.cache != nil {
		if err := c.cache.Put("artist", artistID, details); err != nil && c.log != nil {
			c.log.Warn("failed to cache artist details", "artist_id", artistID, "error", err)
		}
	}

	return details, nil
}

package innertube

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vibecheck/internal/models"
)

// ExtractText pulls plain text out of the provider's polymorphic rich-text
// shape. Missing values, empty objects, and unknown shapes all yield "".
func ExtractText(t *Text) string {
	if t == nil {
		return ""
	}
	if t.Plain != "" {
		return t.Plain
	}
	if t.Text != "" {
		return t.Text
	}
	if len(t.Runs) > 0 {
		var b strings.Builder
		for _, r := range t.Runs {
			b.WriteString(r.Text)
		}
		return b.String()
	}
	return ""
}

// firstText returns the first non-empty extraction from the candidates.
func firstText(candidates ...*Text) string {
	for _, c := range candidates {
		if text := ExtractText(c); text != "" {
			return text
		}
	}
	return ""
}

// resolveThumbnail picks a thumbnail URL from whichever container the item
// carries, probing the flat array, then {thumbnails:[...]}, then
// {contents:[{image:{sources:[...]}}]}.
//
// The last entry is assumed to be the highest resolution; the first entry is
// the fallback when the last has no url. A nil result means no usable
// thumbnail was found, which serializes as an explicit null.
func resolveThumbnail(item Item) *string {
	var thumbs []Thumbnail

	switch {
	case len(item.Thumbnails) > 0:
		thumbs = item.Thumbnails
	case item.Thumbnail != nil && len(item.Thumbnail.Thumbnails) > 0:
		thumbs = item.Thumbnail.Thumbnails
	case item.Thumbnail != nil && len(item.Thumbnail.Contents) > 0:
		thumbs = item.Thumbnail.Contents[0].Image.Sources
	}

	if len(thumbs) == 0 {
		return nil
	}

	u := thumbs[len(thumbs)-1].URL
	if u == "" {
		u = thumbs[0].URL
	}
	return &u
}

// SanitizeTrack normalizes one raw provider record into a canonical
// [models.Track].
//
// Field resolution follows ordered fallback chains: id from
// video_id/videoId/id, artist from the structured artist list (names joined
// with ", ", first entry's id kept as the artist reference) or else the
// byline-like text fields, duration from duration/length. Records that fail
// validation are logged and reported as not ok; no error escapes this
// boundary.
func SanitizeTrack(logger *log.Logger, item Item) (models.Track, bool) {
	var artist, artistID string

	if len(item.Artists) > 0 {
		names := make([]string, len(item.Artists))
		for i, a := range item.Artists {
			names[i] = a.Name
		}
		artist = strings.Join(names, ", ")

		primary := item.Artists[0]
		switch {
		case primary.ID != "":
			artistID = primary.ID
		case primary.ChannelID != "":
			artistID = primary.ChannelID
		default:
			artistID = primary.AltChannelID
		}
	} else {
		artist = firstText(item.Subtitle, item.ShortByline, item.LongByline, item.Author)
	}

	id := item.LegacyVideoID
	if id == "" {
		id = item.VideoID
	}
	if id == "" {
		id = item.ID
	}

	track := models.Track{
		ID:        id,
		Title:     ExtractText(item.Title),
		Artist:    artist,
		ArtistID:  artistID,
		Album:     ExtractText(item.Album),
		Duration:  firstText(item.Duration, item.Length),
		Thumbnail: resolveThumbnail(item),
	}

	if err := track.Validate(); err != nil {
		if logger != nil {
			logger.Warn("malformed track data detected", "error", err, "item", item)
		}
		return models.Track{}, false
	}

	return track, true
}

// sanitizeAll filters items with no identifier and normalizes the rest,
// dropping any that fail validation.
func sanitizeAll(logger *log.Logger, items []Item) []models.Track {
	tracks := make([]models.Track, 0, len(items))
	for _, item := range items {
		if !item.hasID() {
			continue
		}
		if track, ok := SanitizeTrack(logger, item); ok {
			tracks = append(tracks, track)
		}
	}
	return tracks
}

// playlistIDPattern matches bare playlist identifiers: alphanumeric with
// dashes and underscores, at least 10 characters (PL..., OLAK5..., RD...).
var playlistIDPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_]{10,}$`)

// ParsePlaylistID extracts a playlist ID from a YouTube URL or accepts a
// bare ID candidate.
func ParsePlaylistID(input string) (string, bool) {
	if input == "" {
		return "", false
	}

	if u, err := url.Parse(input); err == nil && u.Scheme != "" {
		if list := u.Query().Get("list"); list != "" {
			return list, true
		}
	}

	if playlistIDPattern.MatchString(input) {
		return input, true
	}

	return "", false
}

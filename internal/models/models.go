package models

import "fmt"

// Track is the canonical, immutable representation of a catalogue song.
//
// A Track exists only if the raw provider record passed validation in the
// sanitization layer; malformed records never materialize as Tracks.
type Track struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Artist    string  `json:"artist"`
	ArtistID  string  `json:"artistId,omitempty"` // weak reference to the primary artist's channel
	Album     string  `json:"album,omitempty"`
	Duration  string  `json:"duration,omitempty"`
	Thumbnail *string `json:"thumbnail"` // nil serializes as null: "no thumbnail found"
}

// Validate checks the required Track fields.
//
// The title and artist keys are required but may hold empty strings when the
// provider lacked them; the id must be non-empty.
func (t Track) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("track id is required")
	}
	return nil
}

// PlaylistMetadata describes a fetched playlist for display.
type PlaylistMetadata struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	TrackCount int     `json:"trackCount"`
	Thumbnail  *string `json:"thumbnail"`
}

// ArtistDetails is an artist profile assembled from the provider's artist page.
type ArtistDetails struct {
	Name      string  `json:"name"`
	Bio       string  `json:"bio"`
	Thumbnail *string `json:"thumbnail"`
	TopTracks []Track `json:"topTracks"`
}

// VibeVector is a point in the three-axis vibe space.
//
// Axes run 0.0 to 1.0: energy (chill to hype), mood (dark to bright),
// dance (ambient to danceable).
type VibeVector struct {
	Energy float64 `json:"energy"`
	Mood   float64 `json:"mood"`
	Dance  float64 `json:"dance"`
}

// VibeDetails is the discrete cohesion band shown alongside the score.
type VibeDetails struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// PlaylistAnalysis summarizes the vibe footprint of a track collection.
type PlaylistAnalysis struct {
	CohesionScore int         `json:"cohesionScore"` // 0-100
	Details       VibeDetails `json:"details"`
	DominantVibes VibeVector  `json:"dominantVibes"` // centroid over vectorized tracks
	Outliers      []Track     `json:"outliers"`      // at most 5, sorted by descending distance
}

// VibeTag is a keyword-frequency display chip, independent of the vector model.
type VibeTag struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Score int    `json:"score"` // 0-100, normalized against the top keyword count
}

// Package models defines the domain entities for the vibecheck playlist analysis service.
//
// The package contains two categories of types:
//
// 1. Catalogue entities, normalized from raw provider records:
//   - [Track] : Canonical song metadata; only validated records materialize as Tracks
//   - [PlaylistMetadata] : Display metadata for a fetched playlist
//   - [ArtistDetails] : Artist profile with a short list of top tracks
//
// 2. Analysis results, derived synchronously and never persisted:
//   - [VibeVector] : A track's or collection's (energy, mood, dance) profile in [0,1]^3
//   - [PlaylistAnalysis] : Cohesion score, dominant vibe centroid, and outlier tracks
//   - [VibeTag] : Keyword-frequency display chips with 0-100 scores
//
// All JSON shapes serialize losslessly: optional fields are omitted when absent,
// and a Track's thumbnail is an explicit null when no usable thumbnail was found.
package models

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vibecheck/internal/innertube"
	"github.com/desertthunder/vibecheck/internal/models"
	"github.com/desertthunder/vibecheck/internal/shared"
)

// Catalogue is the provider surface the handlers consume.
// Implemented by innertube.Client.
type Catalogue interface {
	Playlist(ctx context.Context, playlistID string) (*innertube.PlaylistResult, error)
	Artist(ctx context.Context, artistID string) (*models.ArtistDetails, error)
}

// Analyzer computes a vibe profile for a track collection.
// Implemented by vibe.Engine.
type Analyzer interface {
	Analyze(tracks []models.Track) (models.PlaylistAnalysis, []models.VibeTag)
}

// Recommender aggregates multi-seed recommendations.
// Implemented by tasks.Engine.
type Recommender interface {
	RecommendMulti(ctx context.Context, seedIDs, excludeIDs []string) ([]models.Track, error)
}

// envelope is the response wrapper all endpoints share.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// AnalyzeHandler serves POST /api/analyze: fetch a playlist, normalize its
// tracks, and compute the vibe profile.
type AnalyzeHandler struct {
	catalogue Catalogue
	analyzer  Analyzer
	log       *log.Logger
}

// NewAnalyzeHandler creates the analysis endpoint handler.
func NewAnalyzeHandler(catalogue Catalogue, analyzer Analyzer, logger *log.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{catalogue: catalogue, analyzer: analyzer, log: logger}
}

// Routes implements [Handler].
func (h *AnalyzeHandler) Routes() []string { return []string{"/api/analyze"} }

type analyzeRequest struct {
	URL string `json:"url"`
}

type analyzeResponse struct {
	Tracks   []models.Track          `json:"tracks"`
	Metadata models.PlaylistMetadata `json:"metadata"`
	Analysis models.PlaylistAnalysis `json:"analysis"`
	VibeTags []models.VibeTag        `json:"vibeTags"`
}

func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.URL) < 10 {
		writeError(w, http.StatusBadRequest, "Input must be a valid YouTube URL or at least 10 characters for an ID")
		return
	}

	playlistID, ok := innertube.ParsePlaylistID(req.URL)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid Playlist URL or ID format.")
		return
	}

	result, err := h.catalogue.Playlist(r.Context(), playlistID)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, shared.ErrPlaylistNotFound) || errors.Is(err, shared.ErrEmptyPlaylist) {
			status = http.StatusNotFound
		}
		writeError(w, status, "Could not fetch playlist: "+err.Error())
		return
	}

	analysis, tags := h.analyzer.Analyze(result.Tracks)

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: analyzeResponse{
		Tracks:   result.Tracks,
		Metadata: result.Metadata,
		Analysis: analysis,
		VibeTags: tags,
	}})
}

// RecommendHandler serves POST /api/recommendations: multi-seed aggregation
// with exclusion filtering.
type RecommendHandler struct {
	recommender Recommender
	log         *log.Logger
}

// NewRecommendHandler creates the recommendations endpoint handler.
func NewRecommendHandler(recommender Recommender, logger *log.Logger) *RecommendHandler {
	return &RecommendHandler{recommender: recommender, log: logger}
}

// Routes implements [Handler].
func (h *RecommendHandler) Routes() []string { return []string{"/api/recommendations"} }

type recommendRequest struct {
	SeedIDs    []string `json:"seedIds"`
	ExcludeIDs []string `json:"excludeIds"`
}

func (h *RecommendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.SeedIDs) == 0 {
		writeError(w, http.StatusBadRequest, "No seed tracks provided.")
		return
	}

	h.log.Info("fetching recommendations", "seeds", req.SeedIDs, "client", ClientKey(r))

	recommendations, err := h.recommender.RecommendMulti(r.Context(), req.SeedIDs, req.ExcludeIDs)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Failed to fetch recommendations.")
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: map[string]any{
		"recommendations": recommendations,
	}})
}

// ArtistHandler serves GET /api/artists/{id}.
type ArtistHandler struct {
	catalogue Catalogue
	log       *log.Logger
}

// NewArtistHandler creates the artist details endpoint handler.
func NewArtistHandler(catalogue Catalogue, logger *log.Logger) *ArtistHandler {
	return &ArtistHandler{catalogue: catalogue, log: logger}
}

// Routes implements [Handler].
func (h *ArtistHandler) Routes() []string { return []string{"/api/artists/"} }

func (h *ArtistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	artistID := strings.TrimPrefix(r.URL.Path, "/api/artists/")
	if len(artistID) < 2 || strings.Contains(artistID, "/") {
		writeError(w, http.StatusBadRequest, "Invalid Artist ID")
		return
	}

	details, err := h.catalogue.Artist(r.Context(), artistID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Could not find artist details.")
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: details})
}

// HealthHandler serves GET /api/health.
type HealthHandler struct{}

// Routes implements [Handler].
func (h HealthHandler) Routes() []string { return []string{"/api/health"} }

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: map[string]string{"status": "ok"}})
}

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vibecheck/internal/limiter"
	"github.com/desertthunder/vibecheck/internal/shared"
)

// NewAPIRouter assembles the analysis API: request logging on every route,
// per-endpoint rate limit windows on the provider-backed routes.
func NewAPIRouter(
	catalogue Catalogue,
	analyzer Analyzer,
	recommender Recommender,
	lim *limiter.Limiter,
	limits shared.LimitsConfig,
	logger *log.Logger,
) *BasicRouter {
	router := NewBasicRouter()
	router.Use(RequestLogger(logger))

	window := time.Duration(limits.WindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}

	analyzeLimit := limiter.Config{MaxRequests: limits.AnalyzeMaxRequests, Window: window}
	if analyzeLimit.MaxRequests <= 0 {
		analyzeLimit.MaxRequests = 5
	}
	recommendLimit := limiter.Config{MaxRequests: limits.RecommendMaxRequests, Window: window}
	if recommendLimit.MaxRequests <= 0 {
		recommendLimit.MaxRequests = 20
	}

	analyze := NewAnalyzeHandler(catalogue, analyzer, logger)
	recommend := NewRecommendHandler(recommender, logger)
	artist := NewArtistHandler(catalogue, logger)

	router.Handle(http.MethodPost, "/api/analyze",
		RateLimit(lim, analyzeLimit)(analyze))
	router.Handle(http.MethodPost, "/api/recommendations",
		RateLimit(lim, recommendLimit)(recommend))
	router.Handler(artist)
	router.Handler(HealthHandler{})

	return router
}

// Addr formats a host/port pair for [http.Server].
func Addr(cfg shared.ServerConfig) string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

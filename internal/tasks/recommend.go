package tasks

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vibecheck/internal/models"
	"golang.org/x/time/rate"
)

// MaxSeeds caps the fan-out per aggregation to bound provider load.
const MaxSeeds = 5

// Source is the catalogue lookup the aggregator fans out over.
// Implemented by innertube.Client.
type Source interface {
	UpNext(ctx context.Context, seedID string) ([]models.Track, error)
}

// Engine aggregates recommendations across seed tracks.
type Engine struct {
	source  Source
	limiter *rate.Limiter
	log     *log.Logger
}

// NewEngine creates an aggregation engine. requestsPerSecond paces the
// concurrent seed lookups; zero or negative disables pacing.
func NewEngine(source Source, requestsPerSecond float64, logger *log.Logger) *Engine {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	return &Engine{
		source:  source,
		limiter: limiter,
		log:     logger,
	}
}

// RecommendMulti fetches recommendations for up to [MaxSeeds] seed ids
// concurrently, flattens the results in seed order, deduplicates by track id
// (first occurrence wins), and drops any excluded ids.
//
// A single seed's failure is isolated: it logs a warning and contributes an
// empty list while sibling lookups finish independently.
func (e *Engine) RecommendMulti(ctx context.Context, seedIDs, excludeIDs []string) ([]models.Track, error) {
	if len(seedIDs) > MaxSeeds {
		seedIDs = seedIDs[:MaxSeeds]
	}

	perSeed := make([][]models.Track, len(seedIDs))

	var wg sync.WaitGroup
	for i, seedID := range seedIDs {
		if e.limiter != nil {
			if err := e.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		wg.Add(1)
		go func(i int, seedID string) {
			defer wg.Done()

			tracks, err := e.source.UpNext(ctx, seedID)
			if err != nil {
				if e.log != nil {
					e.log.Warn("seed lookup failed", "seed_id", seedID, "error", err)
				}
				return
			}
			perSeed[i] = tracks
		}(i, seedID)
	}
	wg.Wait()

	exclude := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		exclude[id] = struct{}{}
	}

	seen := make(map[string]struct{})
	merged := make([]models.Track, 0)
	for _, tracks := range perSeed {
		for _, track := range tracks {
			if track.ID == "" {
				continue
			}
			if _, dup := seen[track.ID]; dup {
				continue
			}
			seen[track.ID] = struct{}{}

			if _, skip := exclude[track.ID]; skip {
				continue
			}
			merged = append(merged, track)
		}
	}

	return merged, nil
}

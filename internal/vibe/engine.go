// Package vibe implements the vectorization and cohesion engine.
//
// Tracks are mapped into a three-axis vibe space by word-boundary keyword
// matching over their text (title, artist, album). A collection's profile is
// the centroid of its track vectors; cohesion falls linearly with the average
// distance from that centroid, and tracks far from it are flagged as
// outliers. A separate legacy extractor counts keyword frequencies for
// display tags.
package vibe

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/desertthunder/vibecheck/internal/models"
)

// Band colors and the sentinel shown when nothing vectorized.
const (
	cohesiveColor  = "#4caf50"
	moderateColor  = "#ff9800"
	scatteredColor = "#f44336"
	noSignalColor  = "#9e9e9e"

	noSignalText = "Insufficient data to analyze vibe."
)

// Config holds the engine's tunable constants. The defaults reproduce the
// historical behavior; the formula constants have no derivation beyond that.
type Config struct {
	OutlierThreshold float64 // minimum centroid distance for a track to count as an outlier
	OutlierLimit     int     // maximum outliers reported
	CohesionDecay    float64 // slope of the distance-to-score mapping
	TagLimit         int     // maximum legacy tags reported
}

// DefaultConfig returns the standard engine constants: outliers beyond 0.4,
// at most 5 of them, score = round(max(0, 1-2*avgDist)*100).
func DefaultConfig() Config {
	return Config{
		OutlierThreshold: 0.4,
		OutlierLimit:     5,
		CohesionDecay:    2,
		TagLimit:         5,
	}
}

// Engine analyzes track collections. Stateless with respect to inputs; safe
// for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine, filling zero config fields with defaults.
func NewEngine(cfg Config) *Engine {
	d := DefaultConfig()
	if cfg.OutlierThreshold <= 0 {
		cfg.OutlierThreshold = d.OutlierThreshold
	}
	if cfg.OutlierLimit <= 0 {
		cfg.OutlierLimit = d.OutlierLimit
	}
	if cfg.CohesionDecay <= 0 {
		cfg.CohesionDecay = d.CohesionDecay
	}
	if cfg.TagLimit <= 0 {
		cfg.TagLimit = d.TagLimit
	}
	return &Engine{cfg: cfg}
}

// Patterns are compiled once at init; the tables are read-only afterwards.
var (
	dictionaryPatterns = make(map[string]*regexp.Regexp)
	keywordPatterns    = make(map[string]*regexp.Regexp)
)

func init() {
	for _, e := range Dictionary {
		dictionaryPatterns[e.Keyword] = boundaryPattern(e.Keyword)
	}
	for _, k := range Keywords {
		keywordPatterns[k.Keyword] = boundaryPattern(k.Keyword)
	}
}

// boundaryPattern compiles a case-insensitive word-boundary match for a keyword.
func boundaryPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// trackText concatenates the lexical fields a track is matched on.
func trackText(t models.Track) string {
	return strings.ToLower(t.Title + " " + t.Artist + " " + t.Album)
}

// Vectorize maps one track into vibe space.
//
// Every dictionary keyword that matches contributes its vector; the result is
// the component-wise mean over all matches. A track with no matches has no
// vector and is excluded from centroid computation.
func (e *Engine) Vectorize(track models.Track) (models.VibeVector, bool) {
	text := trackText(track)

	var sum models.VibeVector
	matches := 0

	for _, entry := range Dictionary {
		if dictionaryPatterns[entry.Keyword].MatchString(text) {
			sum.Energy += entry.Vector.Energy
			sum.Mood += entry.Vector.Mood
			sum.Dance += entry.Vector.Dance
			matches++
		}
	}

	if matches == 0 {
		return models.VibeVector{}, false
	}

	n := float64(matches)
	return models.VibeVector{
		Energy: sum.Energy / n,
		Mood:   sum.Mood / n,
		Dance:  sum.Dance / n,
	}, true
}

func distance(a, b models.VibeVector) float64 {
	return math.Sqrt(
		(a.Energy-b.Energy)*(a.Energy-b.Energy) +
			(a.Mood-b.Mood)*(a.Mood-b.Mood) +
			(a.Dance-b.Dance)*(a.Dance-b.Dance))
}

// cohesionScore maps the average centroid distance to a 0-100 integer.
// Perfect clustering scores 100; an average distance of 0.5 or more scores 0.
func (e *Engine) cohesionScore(avgDist float64) int {
	raw := math.Max(0, 1-avgDist*e.cfg.CohesionDecay)
	score := int(math.Round(raw * 100))
	if score > 100 {
		score = 100
	}
	return score
}

// describe bands a cohesion score. 80 and 40 both band as moderate.
func describe(score int) models.VibeDetails {
	if score > 80 {
		return models.VibeDetails{Text: "Super Cohesive", Color: cohesiveColor}
	}
	if score < 40 {
		return models.VibeDetails{Text: "Scattered Vibes", Color: scatteredColor}
	}
	return models.VibeDetails{Text: "Moderately Cohesive", Color: moderateColor}
}

type trackVector struct {
	track  models.Track
	vector models.VibeVector
	dist   float64
}

// Analyze computes the vibe profile of a track collection: cohesion score
// and band, dominant-vibe centroid, ranked outliers, and legacy tags.
//
// Never fails: zero vectorizable tracks degrade to a zero-score sentinel
// result with no outliers and no tags.
func (e *Engine) Analyze(tracks []models.Track) (models.PlaylistAnalysis, []models.VibeTag) {
	vectors := make([]trackVector, 0, len(tracks))
	for _, t := range tracks {
		if v, ok := e.Vectorize(t); ok {
			vectors = append(vectors, trackVector{track: t, vector: v})
		}
	}

	if len(vectors) == 0 {
		return models.PlaylistAnalysis{
			CohesionScore: 0,
			Details:       models.VibeDetails{Text: noSignalText, Color: noSignalColor},
			DominantVibes: models.VibeVector{},
			Outliers:      []models.Track{},
		}, []models.VibeTag{}
	}

	n := float64(len(vectors))
	var centroid models.VibeVector
	for _, tv := range vectors {
		centroid.Energy += tv.vector.Energy
		centroid.Mood += tv.vector.Mood
		centroid.Dance += tv.vector.Dance
	}
	centroid.Energy /= n
	centroid.Mood /= n
	centroid.Dance /= n

	total := 0.0
	for i := range vectors {
		vectors[i].dist = distance(vectors[i].vector, centroid)
		total += vectors[i].dist
	}

	outliers := make([]trackVector, 0)
	for _, tv := range vectors {
		if tv.dist > e.cfg.OutlierThreshold {
			outliers = append(outliers, tv)
		}
	}
	sort.SliceStable(outliers, func(i, j int) bool { return outliers[i].dist > outliers[j].dist })
	if len(outliers) > e.cfg.OutlierLimit {
		outliers = outliers[:e.cfg.OutlierLimit]
	}

	outlierTracks := make([]models.Track, len(outliers))
	for i, tv := range outliers {
		outlierTracks[i] = tv.track
	}

	score := e.cohesionScore(total / n)

	return models.PlaylistAnalysis{
		CohesionScore: score,
		Details:       describe(score),
		DominantVibes: centroid,
		Outliers:      outlierTracks,
	}, e.LegacyTags(tracks)
}

// LegacyTags counts keyword occurrences across the whole collection's text
// blob and returns the top tags with scores normalized against the highest
// count.
//
// One quirk is preserved: with no "instrumental" matches, the presence of
// "beats" or "lo-fi" anywhere in the blob forces its count to 5.
func (e *Engine) LegacyTags(tracks []models.Track) []models.VibeTag {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = trackText(t)
	}
	blob := strings.Join(parts, " ")

	counts := make(map[string]int)
	for _, kw := range Keywords {
		if n := len(keywordPatterns[kw.Keyword].FindAllStringIndex(blob, -1)); n > 0 {
			counts[kw.Keyword] = n
		}
	}

	if counts["instrumental"] == 0 &&
		(strings.Contains(blob, "beats") || strings.Contains(blob, "lo-fi")) {
		counts["instrumental"] = 5
	}

	type entry struct {
		kw    Keyword
		count int
	}
	sorted := make([]entry, 0, len(counts))
	for _, kw := range Keywords {
		if counts[kw.Keyword] > 0 {
			sorted = append(sorted, entry{kw: kw, count: counts[kw.Keyword]})
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].count > sorted[j].count })
	if len(sorted) > e.cfg.TagLimit {
		sorted = sorted[:e.cfg.TagLimit]
	}

	maxCount := 1
	if len(sorted) > 0 {
		maxCount = sorted[0].count
	}

	tags := make([]models.VibeTag, len(sorted))
	for i, s := range sorted {
		tags[i] = models.VibeTag{
			Label: s.kw.Label,
			Color: s.kw.Color,
			Score: int(math.Round(float64(s.count) / float64(maxCount) * 100)),
		}
	}
	return tags
}

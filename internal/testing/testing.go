// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/desertthunder/vibecheck/internal/innertube"
	"github.com/desertthunder/vibecheck/internal/models"
)

// MockCatalogue is a test double for the provider client.
//
// Each field configures the corresponding method's return values; UpNextFn
// takes precedence over the static fields when set.
type MockCatalogue struct {
	PlaylistResult *innertube.PlaylistResult
	PlaylistErr    error
	UpNextTracks   map[string][]models.Track
	UpNextErr      error
	UpNextFn       func(ctx context.Context, seedID string) ([]models.Track, error)
	ArtistResult   *models.ArtistDetails
	ArtistErr      error

	mu          sync.Mutex
	UpNextCalls []string // seed ids, append order not deterministic under fan-out
}

func (m *MockCatalogue) Playlist(ctx context.Context, playlistID string) (*innertube.PlaylistResult, error) {
	return m.PlaylistResult, m.PlaylistErr
}

func (m *MockCatalogue) UpNext(ctx context.Context, seedID string) ([]models.Track, error) {
	m.mu.Lock()
	m.UpNextCalls = append(m.UpNextCalls, seedID)
	m.mu.Unlock()
	if m.UpNextFn != nil {
		return m.UpNextFn(ctx, seedID)
	}
	if m.UpNextErr != nil {
		return nil, m.UpNextErr
	}
	return m.UpNextTracks[seedID], nil
}

func (m *MockCatalogue) Artist(ctx context.Context, artistID string) (*models.ArtistDetails, error) {
	return m.ArtistResult, m.ArtistErr
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter passes writes through to target until maxWrites is reached,
// then fails every subsequent write
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

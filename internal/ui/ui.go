package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vibecheck/internal/innertube"
	"github.com/desertthunder/vibecheck/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	TrackListView ViewState = iota
	AnalysisView
	OutlierListView
	RecommendationListView
)

// Catalogue fetches the playlist under analysis.
type Catalogue interface {
	Playlist(ctx context.Context, playlistID string) (*innertube.PlaylistResult, error)
}

// Analyzer computes the vibe profile once the playlist arrives.
type Analyzer interface {
	Analyze(tracks []models.Track) (models.PlaylistAnalysis, []models.VibeTag)
}

// Recommender aggregates seed-based recommendations on demand.
type Recommender interface {
	RecommendMulti(ctx context.Context, seedIDs, excludeIDs []string) ([]models.Track, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx         context.Context
	view        ViewState
	catalogue   Catalogue
	analyzer    Analyzer
	recommender Recommender
	playlistID  string

	width  int
	height int

	result          *innertube.PlaylistResult
	analysis        models.PlaylistAnalysis
	vibeTags        []models.VibeTag
	recommendations []models.Track

	trackList     list.Model
	outlierList   list.Model
	recommendList list.Model

	loadingRecs bool
	err         error
	help        help.Model
	keys        keyMap
}

// NewModel creates a new TUI model for the given playlist.
func NewModel(ctx context.Context, catalogue Catalogue, analyzer Analyzer, recommender Recommender, playlistID string) *Model {
	return &Model{
		ctx:         ctx,
		view:        TrackListView,
		catalogue:   catalogue,
		analyzer:    analyzer,
		recommender: recommender,
		playlistID:  playlistID,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init initializes the TUI by fetching the playlist.
func (m *Model) Init() tea.Cmd {
	return m.fetchPlaylist()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.trackList, &m.outlierList, &m.recommendList} {
			if l.Width() == 0 {
				l.SetSize(msg.Width-4, msg.Height-8)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case TrackListView:
			return m.handleTrackListKeys(msg)
		case AnalysisView:
			return m.handleAnalysisKeys(msg)
		case OutlierListView, RecommendationListView:
			return m.handleSubListKeys(msg)
		}

	case playlistFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.result = msg.result
		m.analysis, m.vibeTags = m.analyzer.Analyze(msg.result.Tracks)
		m.trackList = newTrackList(msg.result.Tracks,
			fmt.Sprintf("Tracks in '%s'", msg.result.Metadata.Title), m.width-4, m.height-8)
		m.outlierList = newTrackList(m.analysis.Outliers, "Vibe Outliers", m.width-4, m.height-8)
		return m, nil

	case recommendationsFetchedMsg:
		m.loadingRecs = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.recommendations = msg.tracks
		m.recommendList = newTrackList(msg.tracks, "Recommended Tracks", m.width-4, m.height-8)
		m.view = RecommendationListView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if m.result == nil {
		return styles.help.Render("Fetching playlist...")
	}

	switch m.view {
	case TrackListView:
		return m.renderTrackList()
	case AnalysisView:
		return m.renderAnalysis()
	case OutlierListView:
		return m.renderSubList(m.outlierList)
	case RecommendationListView:
		return m.renderSubList(m.recommendList)
	default:
		return ""
	}
}

func (m *Model) handleTrackListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.view = AnalysisView
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handleAnalysisKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = TrackListView
		return m, nil
	case "o":
		m.view = OutlierListView
		return m, nil
	case "r":
		if m.loadingRecs {
			return m, nil
		}
		m.loadingRecs = true
		return m, m.fetchRecommendations()
	}
	return m, nil
}

func (m *Model) handleSubListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = AnalysisView
		return m, nil
	}
	return m.updateLists(msg)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case TrackListView:
		m.trackList, cmd = m.trackList.Update(msg)
	case OutlierListView:
		m.outlierList, cmd = m.outlierList.Update(msg)
	case RecommendationListView:
		m.recommendList, cmd = m.recommendList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchPlaylist() tea.Cmd {
	return func() tea.Msg {
		result, err := m.catalogue.Playlist(m.ctx, m.playlistID)
		return playlistFetchedMsg{result: result, err: err}
	}
}

// fetchRecommendations seeds the aggregator with the first tracks of the
// playlist and excludes everything already in it.
func (m *Model) fetchRecommendations() tea.Cmd {
	return func() tea.Msg {
		seeds := make([]string, 0, 5)
		exclude := make([]string, len(m.result.Tracks))
		for i, t := range m.result.Tracks {
			exclude[i] = t.ID
			if len(seeds) < 5 {
				seeds = append(seeds, t.ID)
			}
		}

		tracks, err := m.recommender.RecommendMulti(m.ctx, seeds, exclude)
		return recommendationsFetchedMsg{tracks: tracks, err: err}
	}
}

func (m *Model) renderTrackList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
}

func (m *Model) renderAnalysis() string {
	title := styles.title.Render(fmt.Sprintf("Vibe Analysis: %s", m.result.Metadata.Title))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Cohesion: %d/100  %s\n",
		m.analysis.CohesionScore,
		Banded(m.analysis.Details.Text, m.analysis.Details.Color)))
	b.WriteString(fmt.Sprintf("Dominant vibe: energy %.2f · mood %.2f · dance %.2f\n",
		m.analysis.DominantVibes.Energy,
		m.analysis.DominantVibes.Mood,
		m.analysis.DominantVibes.Dance))
	b.WriteString(fmt.Sprintf("Outliers: %d\n", len(m.analysis.Outliers)))

	if len(m.vibeTags) > 0 {
		b.WriteString("\nVibes: ")
		parts := make([]string, len(m.vibeTags))
		for i, tag := range m.vibeTags {
			parts[i] = Banded(fmt.Sprintf("%s (%d)", tag.Label, tag.Score), tag.Color)
		}
		b.WriteString(strings.Join(parts, "  "))
		b.WriteString("\n")
	}

	if m.loadingRecs {
		b.WriteString("\n" + styles.help.Render("Fetching recommendations..."))
	}

	helpKeys := []key.Binding{m.keys.outliers, m.keys.recommend, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, b.String(), helpView)
}

func (m *Model) renderSubList(l list.Model) string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", l.View(), helpView)
}

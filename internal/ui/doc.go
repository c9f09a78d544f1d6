// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for playlist analysis:
//  1. [TrackListView] : Browse the fetched playlist's tracks
//  2. [AnalysisView] : Cohesion score, band, dominant vibe, and tags
//  3. [OutlierListView] : Tracks far from the collection's vibe centroid
//  4. [RecommendationListView] : Aggregated multi-seed recommendations
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Provider fetches run as tea.Cmds so the interface never blocks on network
// I/O; the vibe analysis itself is synchronous and runs when the playlist
// arrives.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui

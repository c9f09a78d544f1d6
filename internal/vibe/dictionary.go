package vibe

import "github.com/desertthunder/vibecheck/internal/models"

// Entry maps a lexical keyword to its position in vibe space plus display
// metadata. The dictionary is static configuration: loaded once, read-only.
type Entry struct {
	Keyword string
	Vector  models.VibeVector
	Label   string
	Color   string
}

// Dictionary is the keyword-to-vector mapping the engine matches track text
// against. Axes: energy 0.0 (chill) to 1.0 (hype), mood 0.0 (sad/dark) to
// 1.0 (happy/bright), dance 0.0 (ambient) to 1.0 (danceable).
var Dictionary = []Entry{
	// Genres
	{"lofi", models.VibeVector{Energy: 0.2, Mood: 0.5, Dance: 0.3}, "Lofi", "#9c27b0"},
	{"jazz", models.VibeVector{Energy: 0.4, Mood: 0.6, Dance: 0.5}, "Jazz", "#ff9800"},
	{"rock", models.VibeVector{Energy: 0.8, Mood: 0.5, Dance: 0.6}, "Rock", "#f44336"},
	{"metal", models.VibeVector{Energy: 0.95, Mood: 0.2, Dance: 0.4}, "Metal", "#212121"},
	{"hip hop", models.VibeVector{Energy: 0.7, Mood: 0.6, Dance: 0.9}, "Hip Hop", "#4caf50"},
	{"rap", models.VibeVector{Energy: 0.75, Mood: 0.5, Dance: 0.85}, "Rap", "#4caf50"},
	{"pop", models.VibeVector{Energy: 0.7, Mood: 0.8, Dance: 0.8}, "Pop", "#e91e63"},
	{"k-pop", models.VibeVector{Energy: 0.9, Mood: 0.9, Dance: 0.95}, "K-Pop", "#ff4081"},
	{"electronic", models.VibeVector{Energy: 0.8, Mood: 0.7, Dance: 0.9}, "Electronic", "#00bcd4"},
	{"techno", models.VibeVector{Energy: 0.9, Mood: 0.4, Dance: 0.95}, "Techno", "#00bcd4"},
	{"house", models.VibeVector{Energy: 0.8, Mood: 0.8, Dance: 0.95}, "House", "#009688"},
	{"classical", models.VibeVector{Energy: 0.3, Mood: 0.4, Dance: 0.1}, "Classical", "#795548"},
	{"acoustic", models.VibeVector{Energy: 0.3, Mood: 0.6, Dance: 0.4}, "Acoustic", "#ffc107"},
	{"ambient", models.VibeVector{Energy: 0.1, Mood: 0.5, Dance: 0.0}, "Ambient", "#607d8b"},
	{"r&b", models.VibeVector{Energy: 0.4, Mood: 0.7, Dance: 0.6}, "R&B", "#3f51b5"},
	{"soul", models.VibeVector{Energy: 0.4, Mood: 0.7, Dance: 0.5}, "Soul", "#795548"},
	{"folk", models.VibeVector{Energy: 0.3, Mood: 0.5, Dance: 0.3}, "Folk", "#8d6e63"},
	{"country", models.VibeVector{Energy: 0.6, Mood: 0.7, Dance: 0.6}, "Country", "#795548"},
	{"latin", models.VibeVector{Energy: 0.8, Mood: 0.9, Dance: 0.95}, "Latin", "#f44336"},
	{"reggaeton", models.VibeVector{Energy: 0.85, Mood: 0.8, Dance: 0.95}, "Reggaeton", "#ff5722"},
	{"blues", models.VibeVector{Energy: 0.4, Mood: 0.4, Dance: 0.4}, "Blues", "#3f51b5"},
	{"punk", models.VibeVector{Energy: 0.9, Mood: 0.6, Dance: 0.7}, "Punk", "#d32f2f"},
	{"indie", models.VibeVector{Energy: 0.5, Mood: 0.6, Dance: 0.5}, "Indie", "#8bc34a"},
	{"alternative", models.VibeVector{Energy: 0.6, Mood: 0.5, Dance: 0.5}, "Alt", "#9c27b0"},

	// Moods and descriptors
	{"chill", models.VibeVector{Energy: 0.2, Mood: 0.6, Dance: 0.2}, "Chill", "#03a9f4"},
	{"relax", models.VibeVector{Energy: 0.1, Mood: 0.6, Dance: 0.1}, "Relaxing", "#03a9f4"},
	{"sleep", models.VibeVector{Energy: 0.0, Mood: 0.5, Dance: 0.0}, "Sleep", "#455a64"},
	{"party", models.VibeVector{Energy: 0.9, Mood: 0.9, Dance: 0.9}, "Party", "#ffeb3b"},
	{"workout", models.VibeVector{Energy: 0.9, Mood: 0.8, Dance: 0.8}, "Workout", "#ff9800"},
	{"focus", models.VibeVector{Energy: 0.3, Mood: 0.6, Dance: 0.1}, "Focus", "#009688"},
	{"study", models.VibeVector{Energy: 0.2, Mood: 0.6, Dance: 0.1}, "Study", "#009688"},
	{"sad", models.VibeVector{Energy: 0.2, Mood: 0.1, Dance: 0.2}, "Sad", "#3f51b5"},
	{"happy", models.VibeVector{Energy: 0.8, Mood: 1.0, Dance: 0.8}, "Happy", "#ffeb3b"},
	{"upbeat", models.VibeVector{Energy: 0.8, Mood: 0.9, Dance: 0.8}, "Upbeat", "#ffeb3b"},
	{"dark", models.VibeVector{Energy: 0.5, Mood: 0.2, Dance: 0.4}, "Dark", "#212121"},
	{"instrumental", models.VibeVector{Energy: 0.4, Mood: 0.5, Dance: 0.3}, "Instrumental", "#607d8b"},
	{"live", models.VibeVector{Energy: 0.7, Mood: 0.7, Dance: 0.6}, "Live", "#f44336"},

	// Contextual and common words
	{"night", models.VibeVector{Energy: 0.4, Mood: 0.4, Dance: 0.5}, "Night", "#3f51b5"},
	{"late", models.VibeVector{Energy: 0.3, Mood: 0.3, Dance: 0.4}, "Late Night", "#311b92"},
	{"drive", models.VibeVector{Energy: 0.6, Mood: 0.6, Dance: 0.6}, "Driving", "#ff9800"},
	{"vibes", models.VibeVector{Energy: 0.5, Mood: 0.6, Dance: 0.5}, "Vibes", "#9c27b0"},
	{"love", models.VibeVector{Energy: 0.5, Mood: 0.8, Dance: 0.4}, "Love", "#e91e63"},
	{"heart", models.VibeVector{Energy: 0.5, Mood: 0.7, Dance: 0.4}, "Heart", "#e91e63"},
	{"broken", models.VibeVector{Energy: 0.3, Mood: 0.2, Dance: 0.2}, "Heartbreak", "#607d8b"},
	{"summer", models.VibeVector{Energy: 0.8, Mood: 0.9, Dance: 0.7}, "Summer", "#ffeb3b"},
	{"rain", models.VibeVector{Energy: 0.2, Mood: 0.3, Dance: 0.1}, "Rainy", "#607d8b"},
	{"piano", models.VibeVector{Energy: 0.3, Mood: 0.5, Dance: 0.2}, "Piano", "#795548"},
	{"guitar", models.VibeVector{Energy: 0.5, Mood: 0.5, Dance: 0.4}, "Guitar", "#ff9800"},
	{"remix", models.VibeVector{Energy: 0.8, Mood: 0.6, Dance: 0.9}, "Remix", "#00bcd4"},
	{"slowed", models.VibeVector{Energy: 0.3, Mood: 0.3, Dance: 0.3}, "Slowed", "#9c27b0"},
	{"reverb", models.VibeVector{Energy: 0.4, Mood: 0.4, Dance: 0.3}, "Reverb", "#673ab7"},
}

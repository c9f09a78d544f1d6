package vibe

// Keyword maps a lexical keyword to a display label and color for the legacy
// frequency-based tags. Separate model from the vector dictionary.
type Keyword struct {
	Keyword string
	Label   string
	Color   string
}

// Keywords is the flat label/color table the legacy tag extractor counts
// occurrences against. Order matters: ties in the frequency sort keep this
// order.
var Keywords = []Keyword{
	// Genres
	{"lofi", "Chill & Lofi", "#9c27b0"},
	{"jazz", "Jazz Vibes", "#ff9800"},
	{"rock", "Rock", "#f44336"},
	{"metal", "Metal", "#212121"},
	{"hip hop", "Hip Hop", "#4caf50"},
	{"rap", "Rap", "#4caf50"},
	{"electronic", "Electronic", "#00bcd4"},
	{"techno", "Techno", "#00bcd4"},
	{"pop", "Pop", "#e91e63"},
	{"classical", "Classical", "#795548"},
	{"acoustic", "Acoustic", "#ffc107"},
	{"instrumental", "Instrumental", "#607d8b"},
	{"ambient", "Ambient", "#009688"},

	// Moods
	{"chill", "Relaxing", "#03a9f4"},
	{"hype", "High Energy", "#ff5722"},
	{"sad", "Melancholy", "#3f51b5"},
	{"happy", "Upbeat", "#ffeb3b"},
	{"focus", "Focus", "#009688"},
	{"workout", "Workout", "#ff9800"},

	// Era
	{"80s", "80s Retro", "#e91e63"},
	{"90s", "90s Nostalgia", "#9c27b0"},
	{"2000s", "2000s Era", "#3f51b5"},

	// Extended genres
	{"indie", "Indie", "#8bc34a"},
	{"alternative", "Alt", "#9c27b0"},
	{"r&b", "R&B", "#3f51b5"},
	{"soul", "Soul", "#795548"},
	{"latin", "Latin", "#f44336"},
	{"folk", "Folk", "#8d6e63"},
	{"reggaeton", "Reggaeton", "#ff5722"},

	// Context
	{"night", "Night", "#3f51b5"},
	{"love", "Love", "#e91e63"},
	{"summer", "Summer", "#ffeb3b"},
	{"run", "Running", "#ff9800"},
	{"gym", "Gym", "#f44336"},
}

package innertube

import "encoding/json"

// Run is a single segment of a runs-style rich text value.
type Run struct {
	Text string `json:"text"`
}

// Text is the provider's polymorphic rich-text shape.
//
// The proxy relays InnerTube values that are either a plain JSON string, an
// object carrying a text field, or an object carrying a runs array. Unknown
// shapes decode to the zero value and extract as "".
type Text struct {
	Plain string `json:"-"`
	Text  string `json:"text"`
	Runs  []Run  `json:"runs"`
}

// UnmarshalJSON accepts a string, a {text} object, or a {runs} object.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Plain = s
		return nil
	}

	type alias Text
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		// Unknown shape, treat as empty
		return nil
	}

	*t = Text(a)
	return nil
}

// Thumbnail is a single thumbnail source entry.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Artist is a structured artist entry on a raw item.
type Artist struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	ChannelID    string `json:"channel_id"`
	AltChannelID string `json:"channelId"`
}

// thumbnailWrap covers the nested thumbnail containers: a {thumbnails:[...]}
// object, a {contents:[{image:{sources:[...]}}]} object, or a bare array.
type thumbnailWrap struct {
	Thumbnails []Thumbnail `json:"thumbnails"`
	Contents   []struct {
		Image struct {
			Sources []Thumbnail `json:"sources"`
		} `json:"image"`
	} `json:"contents"`
}

func (w *thumbnailWrap) UnmarshalJSON(data []byte) error {
	var flat []Thumbnail
	if err := json.Unmarshal(data, &flat); err == nil {
		w.Thumbnails = flat
		return nil
	}

	type alias thumbnailWrap
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return nil
	}

	*w = thumbnailWrap(a)
	return nil
}

// Item is one raw, heterogeneous record from the proxy.
//
// Field presence varies across playlist, queue, and artist-page responses;
// the sanitization layer resolves each Track field through an ordered
// fallback chain.
type Item struct {
	ID            string         `json:"id"`
	VideoID       string         `json:"videoId"`
	LegacyVideoID string         `json:"video_id"`
	Title         *Text          `json:"title"`
	Artists       []Artist       `json:"artists"`
	Subtitle      *Text          `json:"subtitle"`
	ShortByline   *Text          `json:"short_byline"`
	LongByline    *Text          `json:"long_byline"`
	Author        *Text          `json:"author"`
	Thumbnails    []Thumbnail    `json:"thumbnails"`
	Thumbnail     *thumbnailWrap `json:"thumbnail"`
	Duration      *Text          `json:"duration"`
	Length        *Text          `json:"length"`
	Album         *Text          `json:"album"`
}

// hasID reports whether the item carries any usable track identifier.
func (i Item) hasID() bool {
	return i.VideoID != "" || i.ID != "" || i.LegacyVideoID != ""
}

// header is the shared header shape on playlist and artist responses.
type header struct {
	Title       *Text       `json:"title"`
	Description *Text       `json:"description"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
}

// playlistResponse is the proxy's playlist payload.
//
// Items is a pointer so a missing field (structurally invalid response) is
// distinguishable from a present-but-empty playlist.
type playlistResponse struct {
	Items  *[]Item `json:"items"`
	Title  string  `json:"title"`
	Header *header `json:"header"`
}

// upNextResponse is the proxy's queue payload; either field may be present.
type upNextResponse struct {
	Items    *[]Item `json:"items"`
	Contents *[]Item `json:"contents"`
}

// artistSection is one section of an artist page.
type artistSection struct {
	Title    *Text  `json:"title"`
	Items    []Item `json:"items"`
	Contents []Item `json:"contents"`
}

// artistResponse is the proxy's artist page payload.
type artistResponse struct {
	Header   *header         `json:"header"`
	Sections []artistSection `json:"sections"`
}

// Package innertube implements the catalogue-access layer for YouTube Music.
//
// It talks to the InnerTube proxy server over HTTP and normalizes the
// loosely-typed records the proxy relays ([Item]) into validated
// [models.Track] values. The raw shapes are polymorphic: text fields arrive
// as plain strings, {text} objects, or {runs:[{text}]} arrays, and thumbnails
// hide behind three different nestings. [ExtractText] and [SanitizeTrack]
// resolve those shapes deterministically; records that fail validation are
// logged and dropped, never surfaced to callers.
//
// All network calls go through [shared.WithRetry] and may consult an optional
// fetch cache before touching the proxy.
package innertube

// Package server exposes the analysis core over HTTP.
//
// The router and middleware contracts are deliberately small: [Router]
// registers [Handler] implementations, and [Middleware] composes logging and
// rate limiting around them. [NewAPIRouter] wires the JSON API:
//
//	POST /api/analyze          fetch a playlist and compute its vibe profile
//	POST /api/recommendations  aggregate multi-seed recommendations
//	GET  /api/artists/{id}     artist details with top tracks
//	GET  /api/health           liveness probe
//
// Rate limiting is checked at this boundary, before any provider cost is
// incurred; the analyze and recommendations routes carry separate windows.
package server

package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vibecheck/internal/limiter"
	"github.com/desertthunder/vibecheck/internal/shared"
)

// ClientKey derives the rate-limit key for a request: the first entry of
// X-Forwarded-For when present, otherwise the remote address.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "anonymous"
}

// RequestLogger logs each request with a generated request id, method, path,
// and duration.
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := shared.GenerateID()

			next.ServeHTTP(w, r)

			logger.Info("request",
				"id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"client", ClientKey(r),
				"duration", time.Since(start))
		})
	}
}

// RateLimit rejects requests over the per-client window budget with 429.
//
// The policy check happens before any provider cost is incurred; rejected
// requests are never retried downstream.
func RateLimit(l *limiter.Limiter, cfg limiter.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allowed(ClientKey(r), cfg) {
				writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again in a minute.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// package shared defines cross-cutting helpers for logging, configuration, retries, and storage
package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger builds the application [log.Logger] on the given writer, with
// timestamps and caller reporting enabled. A nil writer falls back to
// [os.Stderr].
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// WithLogger derives a component-scoped child [log.Logger] that stamps the
// given key-value pairs onto every entry. The parent logger is unchanged.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel adjusts the minimum [log.Level] the logger emits.
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// GenerateID returns a fresh v4 [uuid.UUID] string.
func GenerateID() string {
	return uuid.New().String()
}

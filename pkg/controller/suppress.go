package controller

import (
	"net/http"
	"strings"
)

// Switch is the log-sink toggle the suppression middleware operates on.
// logger.AccessSink is the production implementation; tests substitute fakes
// to assert restoration behavior.
type Switch interface {
	Enable() error
	Disable() error
	Enabled() bool
}

// PathContains returns a request predicate matching any URL path that
// contains the given marker.
func PathContains(marker string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		return strings.Contains(r.URL.Path, marker)
	}
}

// WithSuppression returns a middleware that mutes the access-log sink for the
// duration of the downstream call when match(r) is true, then restores the
// sink's prior state unconditionally, including when the downstream handler
// panics. Toggle errors are ignored: suppression is best effort and must
// never fail a request. Non-matching requests pass through untouched.
func WithSuppression(match func(*http.Request) bool, sink Switch, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !match(r) {
			next.ServeHTTP(w, r)

			return
		}

		wasEnabled := sink.Enabled()
		_ = sink.Disable()
		defer func() {
			if wasEnabled {
				_ = sink.Enable()

				return
			}
			_ = sink.Disable()
		}()

		next.ServeHTTP(w, r)
	})
}

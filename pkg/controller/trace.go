package controller

import (
	"net/http"

	"go.uber.org/zap"

	"clovable/pkg/logger"
)

// WithCORSTrace returns a middleware that, when enabled() is true and the
// request carries an Origin header, logs the origin, method and path of the
// request before forwarding it. It never alters the request or the response.
//
// enabled is evaluated per request so the trace follows the live DEBUG_CORS
// environment value rather than a value captured at startup.
func WithCORSTrace(enabled func() bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if enabled() {
			if origin := r.Header.Get("Origin"); origin != "" {
				logger.Info(r.Context(), "cross-origin request",
					zap.String("origin", origin),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
			}
		}

		next.ServeHTTP(w, r)
	})
}

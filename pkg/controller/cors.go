package controller

import (
	"net/http"
	"strings"

	"clovable/pkg/cors"
)

// allowMethods is the method set advertised to permitted origins.
var allowMethods = strings.Join([]string{ //nolint: gochecknoglobals
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodHead,
}, ", ")

// WithCORS returns a middleware enforcing the given resolved policy. For a
// permitted Origin it reflects the origin, allows credentials and exposes all
// response headers; for anything else it attaches no permissive headers and
// lets the browser's same-origin restriction do the rejecting, without an
// explicit error body. OPTIONS preflight requests are short-circuited with
// 204 No Content.
//
// The policy is injected as a value resolved once at composition time; it is
// never re-read mid-flight.
func WithCORS(policy cors.Policy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && policy.Allows(origin) {
			h := w.Header()
			// reflect the origin rather than "*" so credentialed requests work
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Expose-Headers", "*")

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", allowMethods)
				if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
					h.Set("Access-Control-Allow-Headers", reqHeaders)
				} else {
					h.Set("Access-Control-Allow-Headers", "*")
				}
			}
		}

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}

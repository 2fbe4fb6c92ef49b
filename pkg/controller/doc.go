// Package controller contains the HTTP middleware pipeline and helper
// handlers used by the API server.
//
// Pipeline stages, outermost first:
//   - WithSuppression: mutes the access-log sink around matched polling
//     endpoints, restoring its prior state unconditionally.
//   - WithCORSTrace: optional diagnostic logging for cross-origin requests.
//   - WithCORS: enforces the resolved cross-origin policy.
//   - WithMetrics: records request count and latency.
//   - WithLogger: attaches a request-scoped logger and request ID to the
//     context and emits the access log, subject to the sink switch.
//
// Helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof handlers.
package controller

// Package api configures and exposes the HTTP server: route groups, the
// middleware pipeline, diagnostics, metrics, docs and profiling endpoints.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"clovable/internal/api/handler"
	"clovable/internal/config"
	"clovable/pkg/controller"
	"clovable/pkg/cors"
	"clovable/pkg/logger"
)

// activeRequestsMarker identifies the high-frequency polling endpoint whose
// requests are kept out of the access log.
const activeRequestsMarker = "/requests/active"

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server. All durations configure
// server timeouts; zero values fall back to net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Registry receives the server's metrics. Nil uses the process-wide
	// default registry; tests inject their own so servers do not collide.
	Registry *prometheus.Registry
}

// NewOptions maps the HTTP section of the application configuration to the
// Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps carries the server's collaborators.
type Deps struct {
	handler.Deps

	// Policy is the cross-origin policy resolved once at startup; the
	// pipeline enforces it for the whole process lifetime.
	Policy cors.Policy
	// Lookup reads environment variables for the diagnostic endpoint and the
	// trace toggle, both of which consult the live environment per request.
	// Nil defaults to os.Getenv.
	Lookup cors.Lookup
	// Sink is the access-log switch shared by the logging middleware and the
	// suppressor.
	Sink *logger.AccessSink
}

// NewServer wires up and returns a configured *http.Server. It mounts:
//   - Prometheus metrics (MetricsPath) with an OpenTelemetry exporter
//   - the embedded OpenAPI spec and Swagger UI
//   - the business route groups via the registry
//   - /health and /cors-config diagnostics
//   - pprof endpoints
//
// and wraps the mux in the middleware pipeline: access-log suppression
// outermost, then CORS tracing, CORS enforcement, metrics and request
// logging.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	lookup := deps.Lookup
	if lookup == nil {
		lookup = os.Getenv
	}
	sink := deps.Sink
	if sink == nil {
		sink = logger.NewAccessSink()
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	registerer := prometheus.Registerer(prometheus.DefaultRegisterer)
	if opts.Registry != nil {
		registerer = opts.Registry
		mux.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	} else {
		mux.Handle(opts.MetricsPath, promhttp.Handler())
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// swagger playground
	mux.Handle("/docs/", v5emb.New(
		"Clovable API",
		"/specs/v1.yaml",
		"/docs/",
	))

	// diagnostics
	mux.HandleFunc("GET /health", healthHandler)
	mux.HandleFunc("GET /cors-config", corsConfigHandler(lookup))

	// business route groups, mounted in registration order
	registry := NewRegistry(
		handler.NewProjects(deps.Deps),
		handler.NewRepo(deps.Deps),
		handler.NewCommits(deps.Deps),
		handler.NewEnvVars(deps.Deps),
		handler.NewAssets(deps.Deps),
		handler.NewChat(deps.Deps),
		handler.NewTokens(deps.Deps),
		handler.NewSettings(deps.Deps),
		handler.NewServices(deps.Deps),
		handler.NewGitHub(deps.Deps),
		handler.NewVercel(deps.Deps),
	)
	registry.Mount(mux, logger.Get(context.Background()))

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	// pipeline, innermost first
	h, err := controller.WithMetrics(mp.Meter("api"), controller.WithLogger(sink, mux))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}
	h = controller.WithCORS(deps.Policy, h)
	h = controller.WithCORSTrace(func() bool { return cors.DebugEnabled(lookup) }, h)
	h = controller.WithSuppression(controller.PathContains(activeRequestsMarker), sink, h)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           h,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

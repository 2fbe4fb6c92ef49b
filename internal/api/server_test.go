package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"clovable/internal/api"
	"clovable/pkg/cors"
	"clovable/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T, env map[string]string) http.Handler {
	t.Helper()

	lookup := func(key string) string { return env[key] }
	srv, err := api.NewServer(api.Deps{
		Policy: cors.Resolve(lookup),
		Lookup: lookup,
		Sink:   logger.NewAccessSink(),
	}, api.Options{
		Addr:        ":0",
		MetricsPath: "/metrics",
		Registry:    prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	return srv.Handler
}

func TestNewServer_Health(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"development": {},
		"production":  {"CORS_ORIGINS": "https://app.example.com"},
		"debug":       {"DEBUG_CORS": "true"},
	} {
		t.Run(name, func(t *testing.T) {
			h := newTestServer(t, env)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t, `{"ok": true}`, rec.Body.String())
		})
	}
}

func TestNewServer_CorsConfigResolvesFreshPerRequest(t *testing.T) {
	env := map[string]string{}
	h := newTestServer(t, env)

	get := func() map[string]any {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cors-config", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		return resp
	}

	resp := get()
	require.Equal(t, "development", resp["cors_mode"])
	require.Len(t, resp["allowed_origins"], 6)

	// The diagnostic endpoint sees environment changes immediately, without
	// a restart.
	env["DEBUG_CORS"] = "TRUE"
	resp = get()
	require.Equal(t, "debug", resp["cors_mode"])
	require.Equal(t, []any{"*"}, resp["allowed_origins"])

	delete(env, "DEBUG_CORS")
	env["CORS_ORIGINS"] = "https://app.example.com, https://admin.example.com"
	resp = get()
	require.Equal(t, "production", resp["cors_mode"])
	require.Equal(t,
		[]any{"https://app.example.com", "https://admin.example.com"},
		resp["allowed_origins"])
}

func TestNewServer_PipelinePolicyIsFixedAtStartup(t *testing.T) {
	env := map[string]string{"CORS_ORIGINS": "https://app.example.com"}
	h := newTestServer(t, env)

	// Widening the environment after startup changes the diagnostic view but
	// not the enforced policy.
	env["DEBUG_CORS"] = "true"

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://intruder.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewServer_PreflightThroughPipeline(t *testing.T) {
	h := newTestServer(t, map[string]string{"CORS_ORIGINS": "https://app.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestNewServer_MetricsEndpoint(t *testing.T) {
	h := newTestServer(t, map[string]string{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

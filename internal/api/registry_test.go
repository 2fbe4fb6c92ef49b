package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"clovable/internal/api"
	"clovable/pkg/logger"
)

type stubGroup struct {
	name    string
	pattern string
}

func (g stubGroup) Name() string { return g.name }

func (g stubGroup) Prefix() string { return "/" + g.name }

func (g stubGroup) Register(mux *http.ServeMux) {
	mux.HandleFunc(g.pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRegistry_MountsAllGroupsInOrder(t *testing.T) {
	registry := api.NewRegistry(
		stubGroup{name: "alpha", pattern: "GET /alpha"},
		stubGroup{name: "beta", pattern: "GET /beta"},
	)
	registry.Add(stubGroup{name: "gamma", pattern: "GET /gamma"})

	mux := http.NewServeMux()
	registry.Mount(mux, logger.Get(t.Context()))

	require.Equal(t, []string{"alpha", "beta", "gamma"}, registry.Summary())

	for _, path := range []string{"/alpha", "/beta", "/gamma"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"clovable/internal/api/handler"
	"clovable/pkg/domain"
)

func TestEnvVars_SecretValuesMaskedOnList(t *testing.T) {
	store := newMemStorage()
	mux := http.NewServeMux()
	handler.NewEnvVars(handler.Deps{Storage: store}).Register(mux)

	project, err := store.StoreProject(t.Context(), domain.Project{Name: "env-project"})
	require.NoError(t, err)
	base := "/api/projects/" + project.ID.String() + "/env"

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, base+"/DATABASE_URL",
		strings.NewReader(`{"value": "postgres://secret", "secret": true}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "postgres://secret")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, base+"/NODE_ENV",
		strings.NewReader(`{"value": "production"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, base, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []domain.EnvVar `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)

	byKey := map[string]domain.EnvVar{}
	for _, v := range resp.Items {
		byKey[v.Key] = v
	}
	require.Equal(t, "********", byKey["DATABASE_URL"].Value)
	require.Equal(t, "production", byKey["NODE_ENV"].Value)

	// The stored value is intact; only the listing masks it.
	stored, err := store.EnvVarsByProject(t.Context(), project.ID)
	require.NoError(t, err)
	require.Equal(t, "postgres://secret", stored[0].Value)
}

func TestEnvVars_Delete(t *testing.T) {
	store := newMemStorage()
	mux := http.NewServeMux()
	handler.NewEnvVars(handler.Deps{Storage: store}).Register(mux)

	project, err := store.StoreProject(t.Context(), domain.Project{Name: "env-project"})
	require.NoError(t, err)
	base := "/api/projects/" + project.ID.String() + "/env"

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, base+"/TMP",
		strings.NewReader(`{"value": "x"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, base+"/TMP", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	vars, err := store.EnvVarsByProject(t.Context(), project.ID)
	require.NoError(t, err)
	require.Empty(t, vars)
}

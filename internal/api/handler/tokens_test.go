package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"clovable/internal/api/handler"
)

var testTokensConfig = handler.TokensConfig{
	SigningSecret: "test-secret",
	Issuer:        "clovable-test",
	DefaultTTL:    time.Hour,
}

func newTokensMux(store *memStorage) *http.ServeMux {
	mux := http.NewServeMux()
	handler.NewTokens(handler.Deps{Storage: store, Tokens: testTokensConfig}).Register(mux)

	return mux
}

func TestTokens_MintReturnsVerifiableJWT(t *testing.T) {
	store := newMemStorage()
	mux := newTokensMux(store)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tokens",
		strings.NewReader(`{"name": "ci-deployer"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"token"`
		Signed string `json:"signed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ci-deployer", resp.Token.Name)
	require.NotEmpty(t, resp.Signed)

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Signed, &claims, func(*jwt.Token) (any, error) {
		return []byte(testTokensConfig.SigningSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, "clovable-test", claims.Issuer)
	require.Equal(t, "ci-deployer", claims.Subject)
	require.Equal(t, resp.Token.ID, claims.ID)

	// Only the digest is persisted, never the signed token.
	stored, err := store.TokenByHash(t.Context(), handler.HashToken(resp.Signed))
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, resp.Signed, stored.Hash)
}

func TestTokens_MintRequiresName(t *testing.T) {
	mux := newTokensMux(newMemStorage())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tokens", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokens_ListOmitsHashes(t *testing.T) {
	store := newMemStorage()
	mux := newTokensMux(store)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tokens",
		strings.NewReader(`{"name": "reader"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tokens", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), `"hash"`)
}

func TestTokens_Revoke(t *testing.T) {
	store := newMemStorage()
	mux := newTokensMux(store)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tokens",
		strings.NewReader(`{"name": "doomed"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token struct {
			ID string `json:"id"`
		} `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/tokens/"+resp.Token.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var revoked struct {
		RevokedAt time.Time `json:"revokedAt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &revoked))
	require.False(t, revoked.RevokedAt.IsZero())
}

func TestTokens_RevokeUnknownIs404(t *testing.T) {
	mux := newTokensMux(newMemStorage())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete,
		"/api/tokens/00000000-0000-0000-0000-000000000001", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

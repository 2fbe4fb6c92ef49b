package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"clovable/pkg/domain"
	"clovable/pkg/serrors"
)

// TokensConfig configures service-token minting.
type TokensConfig struct {
	// SigningSecret is the HS256 key used to sign tokens.
	SigningSecret string
	// Issuer is placed in the iss claim.
	Issuer string
	// DefaultTTL applies when a mint request carries no ttl.
	DefaultTTL time.Duration
}

// Tokens mints, lists and revokes service tokens. The signed token is
// returned exactly once at mint time; only its SHA-256 digest is stored.
type Tokens struct {
	deps Deps
}

func NewTokens(deps Deps) *Tokens {
	return &Tokens{deps: deps}
}

func (g *Tokens) Name() string { return "tokens" }

func (g *Tokens) Prefix() string { return "/api/tokens" }

func (g *Tokens) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/tokens", g.mint)
	mux.HandleFunc("GET /api/tokens", g.list)
	mux.HandleFunc("DELETE /api/tokens/{id}", g.revoke)
}

// MintToken signs an HS256 service token with the given ID as its jti claim
// and returns the compact form plus its storable digest. Shared with the
// token CLI subcommand.
func MintToken(cfg TokensConfig, id domain.TokenID, name string, ttl time.Duration) (signed, hash string, expiresAt time.Time, err error) {
	if ttl <= 0 {
		ttl = cfg.DefaultTTL
	}

	now := time.Now()
	expiresAt = now.Add(ttl)

	claims := jwt.RegisteredClaims{
		ID:        id.String(),
		Issuer:    cfg.Issuer,
		Subject:   name,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SigningSecret))
	if err != nil {
		return "", "", time.Time{}, serrors.Wrap(serrors.ErrInternal, err, "could not sign token")
	}

	return signed, HashToken(signed), expiresAt, nil
}

// HashToken returns the SHA-256 hex digest of a signed token, the only form
// that is ever persisted.
func HashToken(signed string) string {
	sum := sha256.Sum256([]byte(signed))

	return hex.EncodeToString(sum[:])
}

type mintTokenRequest struct {
	Name string `json:"name"`
	// TTLSeconds overrides the configured default lifetime when positive.
	TTLSeconds int64 `json:"ttlSeconds"`
}

type mintTokenResponse struct {
	Token *domain.ServiceToken `json:"token"`
	// Signed is the compact JWT, shown only in this response.
	Signed string `json:"signed"`
}

func (g *Tokens) mint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req mintTokenRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}
	if req.Name == "" {
		respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "name is required"))

		return
	}

	id := domain.TokenID(uuid.New())
	signed, hash, expiresAt, err := MintToken(g.deps.Tokens, id, req.Name, time.Duration(req.TTLSeconds)*time.Second)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	token, err := g.deps.Storage.StoreToken(ctx, domain.ServiceToken{
		ID:        id,
		Name:      req.Name,
		Hash:      hash,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusCreated, mintTokenResponse{
		Token:  token,
		Signed: signed,
	})
}

func (g *Tokens) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tokens, err := g.deps.Storage.Tokens(ctx)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"items": tokens})
}

func (g *Tokens) revoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	token, err := g.deps.Storage.RevokeToken(ctx, domain.TokenID(id))
	if err != nil {
		respondError(ctx, w, err)

		return
	}
	if token == nil {
		respondError(ctx, w, serrors.With(serrors.ErrNotFound, "token not found"))

		return
	}

	respondJSON(ctx, w, http.StatusOK, token)
}

package storage

import (
	"context"

	"clovable/pkg/domain"
)

// TokenStorage defines persistence for service tokens. Only token hashes are
// stored; the signed token never touches the database.
type TokenStorage interface {
	// StoreToken inserts a token record and returns the stored row.
	StoreToken(ctx context.Context, token domain.ServiceToken) (*domain.ServiceToken, error)
	// Tokens lists all tokens, newest first, including revoked ones.
	Tokens(ctx context.Context) ([]domain.ServiceToken, error)
	// TokenByHash fetches a token by its hash. Returns nil when not found.
	TokenByHash(ctx context.Context, hash string) (*domain.ServiceToken, error)
	// RevokeToken marks a token revoked and returns the updated row, or nil
	// when it was not found.
	RevokeToken(ctx context.Context, id domain.TokenID) (*domain.ServiceToken, error)
}

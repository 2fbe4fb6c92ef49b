package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenID uniquely identifies a service token.
type TokenID uuid.UUID

// ServiceToken is a long-lived credential minted for machine clients. Only a
// hash of the signed token is persisted; the token itself is returned once at
// mint time.
type ServiceToken struct {
	ID TokenID `json:"id"`

	Name string `json:"name"`
	// Hash is the SHA-256 hex digest of the signed token.
	Hash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	// RevokedAt marks revocation; zero value means the token is live.
	RevokedAt time.Time `json:"revokedAt,omitempty"`
}

// Revoked reports whether the token has been revoked.
func (t ServiceToken) Revoked() bool {
	return !t.RevokedAt.IsZero()
}

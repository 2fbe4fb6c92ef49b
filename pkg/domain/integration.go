package domain

import (
	"time"

	"github.com/google/uuid"
)

// IntegrationProvider identifies an external service a project connects to.
type IntegrationProvider string

const (
	// ProviderGitHub is the GitHub repository integration.
	ProviderGitHub IntegrationProvider = "github"
	// ProviderVercel is the Vercel deployment integration.
	ProviderVercel IntegrationProvider = "vercel"
)

// Integration is a project's connection to an external provider. At most one
// integration per provider exists for a project.
type Integration struct {
	ID        uuid.UUID `json:"id"`
	ProjectID ProjectID `json:"projectId"`

	Provider IntegrationProvider `json:"provider"`
	// ExternalRef is the provider-side identifier (repository slug, Vercel
	// project ID).
	ExternalRef string `json:"externalRef"`
	// Token is the provider access token. Never serialized.
	Token string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

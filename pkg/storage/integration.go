package storage

import (
	"context"

	"clovable/pkg/domain"
)

// IntegrationStorage defines persistence for external-provider integrations.
// A project holds at most one integration per provider.
type IntegrationStorage interface {
	// UpsertIntegration inserts or replaces the project's integration for the
	// given provider and returns the stored row.
	UpsertIntegration(ctx context.Context, in domain.Integration) (*domain.Integration, error)
	// IntegrationByProvider fetches a project's integration for a provider.
	// Returns nil when not connected.
	IntegrationByProvider(ctx context.Context,
		id domain.ProjectID,
		provider domain.IntegrationProvider) (*domain.Integration, error)
	// DeleteIntegration disconnects a provider from a project.
	DeleteIntegration(ctx context.Context, id domain.ProjectID, provider domain.IntegrationProvider) error
}

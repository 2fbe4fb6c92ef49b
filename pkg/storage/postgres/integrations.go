package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"clovable/pkg/domain"
)

const integrationsTable = "integrations"

// UpsertIntegration inserts or replaces by the (project_id, provider) unique
// constraint.
func (p *PgSQL) UpsertIntegration(ctx context.Context, in domain.Integration) (*domain.Integration, error) {
	row := PgIntegration{
		ProjectID:   uuid.UUID(in.ProjectID),
		Provider:    string(in.Provider),
		ExternalRef: in.ExternalRef,
		Token:       in.Token,
	}

	var stored PgIntegration
	if _, err := p.Builder.Insert(integrationsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("project_id, provider", goqu.Record{
			"external_ref": in.ExternalRef,
			"token":        in.Token,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgIntegration{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not upsert integration into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) IntegrationByProvider(ctx context.Context,
	id domain.ProjectID,
	provider domain.IntegrationProvider) (*domain.Integration, error) {
	var row PgIntegration
	found, err := p.Builder.From(integrationsTable).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(id)),
			goqu.I("provider").Eq(string(provider)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch integration: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteIntegration(ctx context.Context,
	id domain.ProjectID,
	provider domain.IntegrationProvider) error {
	if _, err := p.Builder.Delete(integrationsTable).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(id)),
			goqu.I("provider").Eq(string(provider)),
		).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete integration from pg: %w", err)
	}

	return nil
}

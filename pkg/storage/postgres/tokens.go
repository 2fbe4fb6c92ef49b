package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"clovable/pkg/domain"
)

const serviceTokensTable = "service_tokens"

func (p *PgSQL) StoreToken(ctx context.Context, token domain.ServiceToken) (*domain.ServiceToken, error) {
	row := PgServiceToken{
		ID:        uuid.UUID(token.ID),
		Name:      token.Name,
		Hash:      token.Hash,
		ExpiresAt: token.ExpiresAt,
	}

	var stored PgServiceToken
	if _, err := p.Builder.Insert(serviceTokensTable).
		Rows(row).
		Returning(&PgServiceToken{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store service token into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) Tokens(ctx context.Context) ([]domain.ServiceToken, error) {
	var rows []PgServiceToken
	if err := p.Builder.From(serviceTokensTable).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch service tokens from pg: %w", err)
	}

	out := make([]domain.ServiceToken, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) TokenByHash(ctx context.Context, hash string) (*domain.ServiceToken, error) {
	var row PgServiceToken
	found, err := p.Builder.From(serviceTokensTable).
		Where(goqu.I("hash").Eq(hash)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch service token by hash: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RevokeToken(ctx context.Context, id domain.TokenID) (*domain.ServiceToken, error) {
	var row PgServiceToken
	found, err := p.Builder.Update(serviceTokensTable).
		Set(goqu.Record{
			"revoked_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("revoked_at").IsNull(),
	).Returning(&PgServiceToken{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not revoke service token in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

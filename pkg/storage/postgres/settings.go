package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"clovable/pkg/domain"
)

const settingsTable = "settings"

// SetSetting upserts by the settings primary key.
func (p *PgSQL) SetSetting(ctx context.Context, key, value string) (*domain.Setting, error) {
	row := PgSetting{Key: key, Value: value}

	var stored PgSetting
	if _, err := p.Builder.Insert(settingsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value":      value,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgSetting{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not upsert setting into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) SettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	var row PgSetting
	found, err := p.Builder.From(settingsTable).
		Where(goqu.I("key").Eq(key)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch setting by key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Settings(ctx context.Context) ([]domain.Setting, error) {
	var rows []PgSetting
	if err := p.Builder.From(settingsTable).
		Order(goqu.I("key").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch settings from pg: %w", err)
	}

	out := make([]domain.Setting, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

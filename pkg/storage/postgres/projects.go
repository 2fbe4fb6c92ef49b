package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"clovable/pkg/domain"
	"clovable/pkg/storage"
)

const (
	projectsTable        = "projects"
	commitsTable         = "commits"
	envVarsTable         = "env_vars"
	assetsTable          = "assets"
	projectServicesTable = "project_services"
)

func (p *PgSQL) StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var row PgProject
	row.FromDomain(project)

	var stored PgProject
	if _, err := p.Builder.Insert(projectsTable).
		Rows(row).
		Returning(&PgProject{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store project into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ProjectByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.From(projectsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Projects(ctx context.Context) ([]domain.Project, error) {
	var rows []PgProject
	if err := p.Builder.From(projectsTable).
		Where(goqu.I("deleted_at").IsNull()).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch projects from pg: %w", err)
	}

	return pgProjectsToDomain(rows), nil
}

func (p *PgSQL) UpdateProject(ctx context.Context,
	id domain.ProjectID,
	updates storage.ProjectUpdates) (*domain.Project, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}

	var row PgProject
	found, err := p.Builder.Update(projectsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProject{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update project in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteProject performs a soft delete by setting deleted_at, returning the
// deleted record.
func (p *PgSQL) DeleteProject(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.Update(projectsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProject{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete project in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreCommits(ctx context.Context, commits ...domain.Commit) ([]domain.Commit, error) {
	if len(commits) == 0 {
		return nil, nil
	}

	rows := make([]PgCommit, len(commits))
	for i := range rows {
		rows[i].FromDomain(commits[i])
	}

	var stored []PgCommit
	if err := p.Builder.Insert(commitsTable).
		Rows(rows).
		Returning(&PgCommit{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store commits into pg: %w", err)
	}

	out := make([]domain.Commit, 0, len(stored))
	for i := range stored {
		out = append(out, *stored[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) CommitsByProject(ctx context.Context, id domain.ProjectID, limit uint) ([]domain.Commit, error) {
	ds := p.Builder.From(commitsTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(id))).
		Order(goqu.I("committed_at").Desc(), goqu.I("id").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgCommit
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch commits from pg: %w", err)
	}

	out := make([]domain.Commit, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// SetEnvVar upserts by the (project_id, key) unique constraint.
func (p *PgSQL) SetEnvVar(ctx context.Context, v domain.EnvVar) (*domain.EnvVar, error) {
	row := PgEnvVar{
		ID:        v.ID,
		ProjectID: uuid.UUID(v.ProjectID),
		Key:       v.Key,
		Value:     v.Value,
		Secret:    v.Secret,
	}
	var stored PgEnvVar
	if _, err := p.Builder.Insert(envVarsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("project_id, key", goqu.Record{
			"value":      v.Value,
			"secret":     v.Secret,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgEnvVar{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not upsert env var into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) EnvVarsByProject(ctx context.Context, id domain.ProjectID) ([]domain.EnvVar, error) {
	var rows []PgEnvVar
	if err := p.Builder.From(envVarsTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(id))).
		Order(goqu.I("key").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch env vars from pg: %w", err)
	}

	out := make([]domain.EnvVar, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) DeleteEnvVar(ctx context.Context, id domain.ProjectID, key string) error {
	if _, err := p.Builder.Delete(envVarsTable).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(id)),
			goqu.I("key").Eq(key),
		).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete env var from pg: %w", err)
	}

	return nil
}

func (p *PgSQL) StoreAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error) {
	row := PgAsset{
		ID:          asset.ID,
		ProjectID:   uuid.UUID(asset.ProjectID),
		Name:        asset.Name,
		ContentType: asset.ContentType,
		SizeBytes:   asset.SizeBytes,
		Path:        asset.Path,
	}
	var stored PgAsset
	if _, err := p.Builder.Insert(assetsTable).
		Rows(row).
		Returning(&PgAsset{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store asset into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) AssetsByProject(ctx context.Context, id domain.ProjectID) ([]domain.Asset, error) {
	var rows []PgAsset
	if err := p.Builder.From(assetsTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(id))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch assets from pg: %w", err)
	}

	out := make([]domain.Asset, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreService(ctx context.Context, svc domain.ProjectService) (*domain.ProjectService, error) {
	row := PgProjectService{
		ID:        svc.ID,
		ProjectID: uuid.UUID(svc.ProjectID),
		Name:      svc.Name,
		Kind:      svc.Kind,
		Status:    svc.Status,
	}
	var stored PgProjectService
	if _, err := p.Builder.Insert(projectServicesTable).
		Rows(row).
		Returning(&PgProjectService{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store project service into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ServicesByProject(ctx context.Context, id domain.ProjectID) ([]domain.ProjectService, error) {
	var rows []PgProjectService
	if err := p.Builder.From(projectServicesTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(id))).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch project services from pg: %w", err)
	}

	out := make([]domain.ProjectService, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

package storage

import (
	"context"

	"clovable/pkg/domain"
)

// ProjectUpdates describes optional fields applied to an existing project.
// Nil fields are left unchanged.
type ProjectUpdates struct {
	// Name, when provided, replaces the project name.
	Name *string
	// Description, when provided, replaces the description.
	Description *string
	// Status, when non-empty, replaces the lifecycle status.
	Status domain.ProjectStatus
}

// ProjectStorage defines persistence for projects and their project-scoped
// records (commits, env vars, assets, linked services). Lookups exclude
// soft-deleted projects and return nil, not an error, when nothing matches.
type ProjectStorage interface {
	// StoreProject inserts a project and returns the stored row including
	// generated fields.
	StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	// ProjectByID fetches a project by ID. Returns nil when not found.
	ProjectByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	// Projects lists all non-deleted projects, newest first.
	Projects(ctx context.Context) ([]domain.Project, error)
	// UpdateProject applies the given updates and returns the updated row,
	// or nil when the project does not exist.
	UpdateProject(ctx context.Context, id domain.ProjectID, updates ProjectUpdates) (*domain.Project, error)
	// DeleteProject soft-deletes a project and returns the deleted row, or
	// nil when it was not found.
	DeleteProject(ctx context.Context, id domain.ProjectID) (*domain.Project, error)

	// StoreCommits records one or more commits and returns the stored rows.
	StoreCommits(ctx context.Context, commits ...domain.Commit) ([]domain.Commit, error)
	// CommitsByProject lists a project's recorded commits, newest first,
	// limited by limit (0 means no limit).
	CommitsByProject(ctx context.Context, id domain.ProjectID, limit uint) ([]domain.Commit, error)

	// SetEnvVar upserts an environment variable by (project, key).
	SetEnvVar(ctx context.Context, v domain.EnvVar) (*domain.EnvVar, error)
	// EnvVarsByProject lists a project's environment variables by key.
	EnvVarsByProject(ctx context.Context, id domain.ProjectID) ([]domain.EnvVar, error)
	// DeleteEnvVar removes an environment variable by key.
	DeleteEnvVar(ctx context.Context, id domain.ProjectID, key string) error

	// StoreAsset registers asset metadata and returns the stored row.
	StoreAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error)
	// AssetsByProject lists a project's assets, newest first.
	AssetsByProject(ctx context.Context, id domain.ProjectID) ([]domain.Asset, error)

	// StoreService registers a linked service and returns the stored row.
	StoreService(ctx context.Context, svc domain.ProjectService) (*domain.ProjectService, error)
	// ServicesByProject lists a project's linked services.
	ServicesByProject(ctx context.Context, id domain.ProjectID) ([]domain.ProjectService, error)
}

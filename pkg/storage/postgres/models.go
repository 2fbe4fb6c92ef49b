package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"clovable/pkg/domain"
)

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type PgProject struct {
	ID uuid.UUID `db:"id"        goqu:"skipinsert"`


	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgProject) ToDomain() *domain.Project {
	return &domain.Project{
		ID:          domain.ProjectID(p.ID),
		Name:        p.Name,
		Description: p.Description.String,
		Status:      domain.ProjectStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgProject) FromDomain(project domain.Project) {
	*p = PgProject{
		ID:          uuid.UUID(project.ID),
		Name:        project.Name,
		Description: nullString(project.Description),
		Status:      string(project.Status),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   nullTime(project.UpdatedAt),
		DeletedAt:   nullTime(project.DeletedAt),
	}
}

func pgProjectsToDomain(projects []PgProject) []domain.Project {
	out := make([]domain.Project, 0, len(projects))
	for i := range projects {
		out = append(out, *projects[i].ToDomain())
	}

	return out
}

type PgCommit struct {
	ID        uuid.UUID `db:"id"        goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	SHA     string `db:"sha"`
	Message string `db:"message"`
	Author  string `db:"author"`

	CommittedAt time.Time `db:"committed_at"`
	CreatedAt   time.Time `db:"created_at" goqu:"skipinsert"`
}

func (c *PgCommit) ToDomain() *domain.Commit {
	return &domain.Commit{
		ID:          domain.CommitID(c.ID),
		ProjectID:   domain.ProjectID(c.ProjectID),
		SHA:         c.SHA,
		Message:     c.Message,
		Author:      c.Author,
		CommittedAt: c.CommittedAt,
		CreatedAt:   c.CreatedAt,
	}
}

func (c *PgCommit) FromDomain(commit domain.Commit) {
	*c = PgCommit{
		ID:          uuid.UUID(commit.ID),
		ProjectID:   uuid.UUID(commit.ProjectID),
		SHA:         commit.SHA,
		Message:     commit.Message,
		Author:      commit.Author,
		CommittedAt: commit.CommittedAt,
		CreatedAt:   commit.CreatedAt,
	}
}

type PgEnvVar struct {
	ID        uuid.UUID `db:"id"        goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	Key    string `db:"key"`
	Value  string `db:"value"`
	Secret bool   `db:"secret"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (v *PgEnvVar) ToDomain() *domain.EnvVar {
	return &domain.EnvVar{
		ID:        v.ID,
		ProjectID: domain.ProjectID(v.ProjectID),
		Key:       v.Key,
		Value:     v.Value,
		Secret:    v.Secret,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt.Time,
	}
}

type PgAsset struct {
	ID        uuid.UUID `db:"id"        goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	Name        string `db:"name"`
	ContentType string `db:"content_type"`
	SizeBytes   int64  `db:"size_bytes"`
	Path        string `db:"path"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (a *PgAsset) ToDomain() *domain.Asset {
	return &domain.Asset{
		ID:          a.ID,
		ProjectID:   domain.ProjectID(a.ProjectID),
		Name:        a.Name,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		Path:        a.Path,
		CreatedAt:   a.CreatedAt,
	}
}

type PgProjectService struct {
	ID        uuid.UUID `db:"id"        goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	Name   string `db:"name"`
	Kind   string `db:"kind"`
	Status string `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (s *PgProjectService) ToDomain() *domain.ProjectService {
	return &domain.ProjectService{
		ID:        s.ID,
		ProjectID: domain.ProjectID(s.ProjectID),
		Name:      s.Name,
		Kind:      s.Kind,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}

type PgChatSession struct {
	ID        uuid.UUID `db:"id"        goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	Title string `db:"title"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (s *PgChatSession) ToDomain() *domain.ChatSession {
	return &domain.ChatSession{
		ID:        domain.SessionID(s.ID),
		ProjectID: domain.ProjectID(s.ProjectID),
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt.Time,
	}
}

type PgChatMessage struct {
	ID        uuid.UUID `db:"id"        goqu:"skipinsert"`
	SessionID uuid.UUID `db:"session_id"`

	Role    string `db:"role"`
	Content string `db:"content"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (m *PgChatMessage) ToDomain() *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:        m.ID,
		SessionID: domain.SessionID(m.SessionID),
		Role:      domain.MessageRole(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

type PgServiceToken struct {
	ID uuid.UUID `db:"id"`

	Name string `db:"name"`
	Hash string `db:"hash"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	ExpiresAt time.Time    `db:"expires_at"`
	RevokedAt sql.NullTime `db:"revoked_at" goqu:"skipinsert"`
}

func (t *PgServiceToken) ToDomain() *domain.ServiceToken {
	return &domain.ServiceToken{
		ID:        domain.TokenID(t.ID),
		Name:      t.Name,
		Hash:      t.Hash,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
		RevokedAt: t.RevokedAt.Time,
	}
}

type PgSetting struct {
	Key   string `db:"key"`
	Value string `db:"value"`

	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (s *PgSetting) ToDomain() *domain.Setting {
	return &domain.Setting{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}

type PgIntegration struct {
	ID        uuid.UUID `db:"id"        goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	Provider    string `db:"provider"`
	ExternalRef string `db:"external_ref"`
	Token       string `db:"token"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (i *PgIntegration) ToDomain() *domain.Integration {
	return &domain.Integration{
		ID:          i.ID,
		ProjectID:   domain.ProjectID(i.ProjectID),
		Provider:    domain.IntegrationProvider(i.Provider),
		ExternalRef: i.ExternalRef,
		Token:       i.Token,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt.Time,
	}
}

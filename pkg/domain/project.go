package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID uniquely identifies a project.
type ProjectID uuid.UUID

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	// ProjectStatusActive indicates the project is being worked on.
	ProjectStatusActive ProjectStatus = "ACTIVE"
	// ProjectStatusArchived indicates the project is retained but read-only.
	ProjectStatusArchived ProjectStatus = "ARCHIVED"
)

// Project is a managed application project with its own repository, chat
// history, environment and linked services.
type Project struct {
	// ID is the unique identifier of the project.
	ID ProjectID `json:"id"`
	// Name is the human-readable project name.
	Name string `json:"name"`
	// Description is an optional free-form summary.
	Description string `json:"description,omitempty"`
	// Status is the current lifecycle state.
	Status ProjectStatus `json:"status"`

	// CreatedAt is the time the project was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the project was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks a soft delete; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// CommitID uniquely identifies a recorded commit.
type CommitID uuid.UUID

// Commit is one entry of a project's recorded commit history.
type Commit struct {
	ID        CommitID  `json:"id"`
	ProjectID ProjectID `json:"projectId"`

	// SHA is the commit hash as reported by the repository.
	SHA string `json:"sha"`
	// Message is the commit message.
	Message string `json:"message"`
	// Author is the commit author string.
	Author string `json:"author"`

	// CommittedAt is the commit timestamp from the repository.
	CommittedAt time.Time `json:"committedAt"`
	// CreatedAt is the time the commit was recorded here.
	CreatedAt time.Time `json:"createdAt"`
}

// EnvVar is a single environment variable scoped to a project.
type EnvVar struct {
	ID        uuid.UUID `json:"id"`
	ProjectID ProjectID `json:"projectId"`

	Key   string `json:"key"`
	Value string `json:"value"`
	// Secret marks values that must be masked when listed.
	Secret bool `json:"secret"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Asset is uploaded file metadata attached to a project. The blob itself
// lives outside the database; only its descriptor is stored.
type Asset struct {
	ID        uuid.UUID `json:"id"`
	ProjectID ProjectID `json:"projectId"`

	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	// Path is the storage location of the blob.
	Path string `json:"path"`

	CreatedAt time.Time `json:"createdAt"`
}

// ProjectService is an auxiliary service linked to a project, such as a
// database or a queue provisioned for it.
type ProjectService struct {
	ID        uuid.UUID `json:"id"`
	ProjectID ProjectID `json:"projectId"`

	Name string `json:"name"`
	// Kind classifies the service (database, cache, queue, ...). Free-form.
	Kind string `json:"kind"`
	// Status is the provisioning state as last reported.
	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

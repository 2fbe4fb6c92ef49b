// Package storage defines the persistence interfaces the application relies
// on. It abstracts entity storage, schema provisioning and transaction
// management so that different backends (e.g. PostgreSQL) can provide
// concrete implementations.
package storage

import "context"

// SchemaEnsurer provisions the persistent schema. EnsureSchema creates every
// declared entity if it does not already exist and is idempotent across
// repeated process restarts; the startup sequencer calls it exactly once
// before the server accepts traffic.
type SchemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

// AllStorage is a composite interface that includes all domain-specific
// storage capabilities required by the application.
type AllStorage interface {
	ProjectStorage
	ChatStorage
	TokenStorage
	SettingsStorage
	IntegrationStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with schema
// provisioning, transaction support and lifecycle management.
type Storage interface {
	AllStorage
	SchemaEnsurer

	// Close releases any resources held by the storage implementation. After
	// Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb, then commits on success or
	// rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

package storage

import (
	"context"

	"clovable/pkg/domain"
)

// ChatStorage defines persistence for chat sessions and messages.
type ChatStorage interface {
	// StoreSession inserts a session and returns the stored row.
	StoreSession(ctx context.Context, session domain.ChatSession) (*domain.ChatSession, error)
	// SessionByID fetches a session by ID. Returns nil when not found.
	SessionByID(ctx context.Context, id domain.SessionID) (*domain.ChatSession, error)
	// SessionsByProject lists a project's sessions, newest first.
	SessionsByProject(ctx context.Context, id domain.ProjectID) ([]domain.ChatSession, error)

	// StoreMessage appends a message to its session and returns the stored
	// row. The session's updated_at is touched in the same statement scope.
	StoreMessage(ctx context.Context, msg domain.ChatMessage) (*domain.ChatMessage, error)
	// MessagesBySession lists a session's messages oldest first, limited by
	// limit (0 means no limit).
	MessagesBySession(ctx context.Context, id domain.SessionID, limit uint) ([]domain.ChatMessage, error)
}

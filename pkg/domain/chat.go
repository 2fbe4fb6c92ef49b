package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionID uniquely identifies a chat session.
type SessionID uuid.UUID

// ChatSession groups the messages of one conversation within a project.
type ChatSession struct {
	ID        SessionID `json:"id"`
	ProjectID ProjectID `json:"projectId"`

	Title string `json:"title"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageRole identifies the author side of a chat message.
type MessageRole string

const (
	// RoleUser marks messages written by the operator.
	RoleUser MessageRole = "user"
	// RoleAssistant marks messages produced by the agent.
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is a single message within a session.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	SessionID SessionID `json:"sessionId"`

	Role    MessageRole `json:"role"`
	Content string      `json:"content"`

	CreatedAt time.Time `json:"createdAt"`
}

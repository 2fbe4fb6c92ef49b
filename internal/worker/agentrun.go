package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"clovable/internal/agent"
	"clovable/pkg/domain"
	"clovable/pkg/logger"
	"clovable/pkg/serrors"
)

// AgentWorker is a River worker that executes one agent run per job: it hands
// the prompt to the Runner and appends the reply to the session as an
// assistant message. A run against a session that no longer exists is
// canceled rather than retried.
type AgentWorker struct {
	river.WorkerDefaults[agent.JobArgs]

	runner agent.Runner
	chats  storageChats
}

// storageChats is the slice of chat persistence the worker needs.
type storageChats interface {
	SessionByID(ctx context.Context, id domain.SessionID) (*domain.ChatSession, error)
	StoreMessage(ctx context.Context, msg domain.ChatMessage) (*domain.ChatMessage, error)
}

func NewAgentWorker(runner agent.Runner, chats storageChats) *AgentWorker {
	return &AgentWorker{
		runner: runner,
		chats:  chats,
	}
}

// Work executes a single agent run. Runner failures are returned so River
// retries them up to the job's max attempts.
func (w *AgentWorker) Work(ctx context.Context, job *river.Job[agent.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("sessionID", job.Args.SessionID.String()))

	session, err := w.chats.SessionByID(ctx, domain.SessionID(job.Args.SessionID))
	if err != nil {
		return fmt.Errorf("could not load session: %w", err)
	}
	if session == nil {
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "session is gone")) //nolint: wrapcheck
	}

	reply, err := w.runner.Run(ctx, job.Args.Prompt)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "agent run failed", zap.Error(err))

		return fmt.Errorf("could not run agent: %w", err)
	}

	if _, err := w.chats.StoreMessage(ctx, domain.ChatMessage{
		ID:        uuid.New(),
		SessionID: session.ID,
		Role:      domain.RoleAssistant,
		Content:   reply,
	}); err != nil {
		return fmt.Errorf("could not store assistant message: %w", err)
	}

	logger.Info(ctx, "agent run completed")

	return nil
}

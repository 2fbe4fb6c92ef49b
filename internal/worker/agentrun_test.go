package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"clovable/internal/agent"
	mockagent "clovable/internal/agent/mock"
	"clovable/internal/worker"
	"clovable/pkg/domain"
	"clovable/pkg/logger"
	"clovable/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fakeChats struct {
	session *domain.ChatSession
	stored  []domain.ChatMessage

	sessionErr error
	storeErr   error
}

func (f *fakeChats) SessionByID(_ context.Context, _ domain.SessionID) (*domain.ChatSession, error) {
	return f.session, f.sessionErr
}

func (f *fakeChats) StoreMessage(_ context.Context, msg domain.ChatMessage) (*domain.ChatMessage, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	f.stored = append(f.stored, msg)

	return &msg, nil
}

func makeJob(id int64, sessionID uuid.UUID, prompt string) *river.Job[agent.JobArgs] {
	return &river.Job[agent.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args: agent.JobArgs{
			SessionID: sessionID,
			MessageID: uuid.New(),
			Prompt:    prompt,
		},
	}
}

func TestAgentWorker_Work_AppendsAssistantReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionID := uuid.New()
	chats := &fakeChats{session: &domain.ChatSession{ID: domain.SessionID(sessionID)}}

	runner := mockagent.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), "add auth").Return("done", nil)

	w := worker.NewAgentWorker(runner, chats)
	require.NoError(t, w.Work(context.Background(), makeJob(1, sessionID, "add auth")))

	require.Len(t, chats.stored, 1)
	require.Equal(t, domain.RoleAssistant, chats.stored[0].Role)
	require.Equal(t, "done", chats.stored[0].Content)
	require.Equal(t, domain.SessionID(sessionID), chats.stored[0].SessionID)
}

func TestAgentWorker_Work_MissingSessionCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mockagent.NewMockRunner(ctrl)

	w := worker.NewAgentWorker(runner, &fakeChats{})
	err := w.Work(context.Background(), makeJob(2, uuid.New(), "anything"))
	require.Error(t, err)

	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestAgentWorker_Work_RunnerErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionID := uuid.New()
	chats := &fakeChats{session: &domain.ChatSession{ID: domain.SessionID(sessionID)}}

	runner := mockagent.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))

	w := worker.NewAgentWorker(runner, chats)
	err := w.Work(context.Background(), makeJob(3, sessionID, "flaky"))
	require.Error(t, err)

	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
	require.Empty(t, chats.stored)
}

func TestAgentWorker_Work_BadRequestCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionID := uuid.New()
	chats := &fakeChats{session: &domain.ChatSession{ID: domain.SessionID(sessionID)}}

	runner := mockagent.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return("", serrors.With(serrors.ErrBadRequest, "unusable prompt"))

	w := worker.NewAgentWorker(runner, chats)
	err := w.Work(context.Background(), makeJob(4, sessionID, "???"))
	require.Error(t, err)

	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

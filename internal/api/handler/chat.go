package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"clovable/internal/agent"
	"clovable/pkg/domain"
	"clovable/pkg/logger"
	"clovable/pkg/serrors"
)

// streamPollInterval is how often the WebSocket stream checks the session for
// messages appended by the agent worker.
const streamPollInterval = time.Second

// Chat owns chat sessions and messages, the act operation that enqueues an
// agent run, and the WebSocket message stream.
type Chat struct {
	deps Deps

	upgrader websocket.Upgrader
}

func NewChat(deps Deps) *Chat {
	return &Chat{
		deps: deps,
		upgrader: websocket.Upgrader{
			// Cross-origin policy is already enforced by the middleware
			// pipeline before the upgrade reaches us.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (g *Chat) Name() string { return "chat" }

func (g *Chat) Prefix() string { return "/api/chat" }

func (g *Chat) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat/sessions", g.createSession)
	mux.HandleFunc("GET /api/chat/sessions", g.listSessions)
	mux.HandleFunc("GET /api/chat/sessions/{session}", g.getSession)
	mux.HandleFunc("GET /api/chat/sessions/{session}/messages", g.listMessages)
	mux.HandleFunc("POST /api/chat/sessions/{session}/act", g.act)
	mux.HandleFunc("GET /api/chat/sessions/{session}/requests/active", g.activeRequests)
	mux.HandleFunc("GET /api/chat/ws/{session}", g.stream)
}

type createSessionRequest struct {
	ProjectID domain.ProjectID `json:"projectId"`
	Title     string           `json:"title"`
}

func (g *Chat) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createSessionRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}

	project, err := requireProject(ctx, g.deps.Storage, req.ProjectID)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	if req.Title == "" {
		req.Title = "New chat"
	}

	session, err := g.deps.Storage.StoreSession(ctx, domain.ChatSession{
		ProjectID: project.ID,
		Title:     req.Title,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusCreated, session)
}

func (g *Chat) listSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID, err := uuid.Parse(r.URL.Query().Get("project"))
	if err != nil {
		respondError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid project query parameter"))

		return
	}

	sessions, err := g.deps.Storage.SessionsByProject(ctx, domain.ProjectID(projectID))
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"items": sessions})
}

func (g *Chat) requireSession(ctx context.Context, r *http.Request) (*domain.ChatSession, error) {
	id, err := pathUUID(r, "session")
	if err != nil {
		return nil, err
	}

	session, err := g.deps.Storage.SessionByID(ctx, domain.SessionID(id))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if session == nil {
		return nil, serrors.With(serrors.ErrNotFound, "session not found")
	}

	return session, nil
}

func (g *Chat) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := g.requireSession(ctx, r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, session)
}

func (g *Chat) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := g.requireSession(ctx, r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	messages, err := g.deps.Storage.MessagesBySession(ctx, session.ID, 0)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"items": messages})
}

type actRequest struct {
	Prompt string `json:"prompt"`
}

type actResponse struct {
	Message  *domain.ChatMessage `json:"message"`
	Enqueued bool                `json:"enqueued"`
}

// act stores the operator's message and enqueues an agent run for it. The
// assistant reply lands asynchronously; clients observe it via the stream or
// the active-requests poll.
func (g *Chat) act(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := g.requireSession(ctx, r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	var req actRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}
	if req.Prompt == "" {
		respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "prompt is required"))

		return
	}

	msg, err := g.deps.Storage.StoreMessage(ctx, domain.ChatMessage{
		SessionID: session.ID,
		Role:      domain.RoleUser,
		Content:   req.Prompt,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	enqueued, err := g.deps.Storage.AddJob(ctx, agent.JobArgs{
		SessionID: uuid.UUID(session.ID),
		MessageID: msg.ID,
		Prompt:    req.Prompt,
	}, nil)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusAccepted, actResponse{
		Message:  msg,
		Enqueued: enqueued,
	})
}

type activeRequestsResponse struct {
	Active bool `json:"active"`
}

// activeRequests reports whether the session is waiting on an agent reply.
// Clients poll it aggressively, which is why the access-log suppressor keys
// on this path.
func (g *Chat) activeRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := g.requireSession(ctx, r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	messages, err := g.deps.Storage.MessagesBySession(ctx, session.ID, 0)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	active := len(messages) > 0 && messages[len(messages)-1].Role == domain.RoleUser

	respondJSON(ctx, w, http.StatusOK, activeRequestsResponse{Active: active})
}

// stream upgrades to a WebSocket and pushes the session's messages: the full
// history on connect, then every newly appended message until the client
// goes away.
func (g *Chat) stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := g.requireSession(ctx, r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the handshake error response.
		logger.Warn(ctx, "websocket upgrade failed", zap.Error(err))

		return
	}
	defer func() { _ = conn.Close() }()

	// Drain client frames so control messages are processed; close the
	// connection context when the client goes away.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sent := 0
	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()

	for {
		messages, err := g.deps.Storage.MessagesBySession(ctx, session.ID, 0)
		if err != nil {
			logger.Error(ctx, "could not load session messages", zap.Error(err))

			return
		}

		for ; sent < len(messages); sent++ {
			if err := conn.WriteJSON(messages[sent]); err != nil {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

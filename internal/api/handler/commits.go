package handler

import (
	"net/http"
	"strconv"
	"time"

	"clovable/pkg/domain"
	"clovable/pkg/serrors"
)

const defaultCommitLimit = 50

// Commits records and lists a project's commit history.
type Commits struct {
	deps Deps
}

func NewCommits(deps Deps) *Commits {
	return &Commits{deps: deps}
}

func (g *Commits) Name() string { return "commits" }

func (g *Commits) Prefix() string { return "" }

func (g *Commits) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects/{id}/commits", g.list)
	mux.HandleFunc("POST /api/projects/{id}/commits", g.record)
}

func (g *Commits) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	project, err := requireProject(ctx, g.deps.Storage, domain.ProjectID(id))
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	limit := uint(defaultCommitLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	commits, err := g.deps.Storage.CommitsByProject(ctx, project.ID, limit)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"items": commits})
}

type recordCommitRequest struct {
	SHA         string    `json:"sha"`
	Message     string    `json:"message"`
	Author      string    `json:"author"`
	CommittedAt time.Time `json:"committedAt"`
}

func (g *Commits) record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	project, err := requireProject(ctx, g.deps.Storage, domain.ProjectID(id))
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	var req recordCommitRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}
	if req.SHA == "" {
		respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "sha is required"))

		return
	}
	if req.CommittedAt.IsZero() {
		req.CommittedAt = time.Now()
	}

	stored, err := g.deps.Storage.StoreCommits(ctx, domain.Commit{
		ProjectID:   project.ID,
		SHA:         req.SHA,
		Message:     req.Message,
		Author:      req.Author,
		CommittedAt: req.CommittedAt,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusCreated, stored[0])
}

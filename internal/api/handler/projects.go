package handler

import (
	"net/http"

	"clovable/pkg/domain"
	"clovable/pkg/serrors"
	"clovable/pkg/storage"
)

// Projects is the project CRUD group.
type Projects struct {
	deps Deps
}

func NewProjects(deps Deps) *Projects {
	return &Projects{deps: deps}
}

func (g *Projects) Name() string { return "projects" }

func (g *Projects) Prefix() string { return "/api/projects" }

func (g *Projects) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/projects", g.create)
	mux.HandleFunc("GET /api/projects", g.list)
	mux.HandleFunc("GET /api/projects/{id}", g.get)
	mux.HandleFunc("PATCH /api/projects/{id}", g.update)
	mux.HandleFunc("DELETE /api/projects/{id}", g.delete)
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (g *Projects) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createProjectRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}
	if req.Name == "" {
		respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "name is required"))

		return
	}

	project, err := g.deps.Storage.StoreProject(ctx, domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.ProjectStatusActive,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusCreated, project)
}

func (g *Projects) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := g.deps.Storage.Projects(ctx)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"items": projects})
}

func (g *Projects) get(w http.ResponseWriter, r *http.Request) {
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

	respondJSON(ctx, w, http.StatusOK, project)
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

func (g *Projects) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	var req updateProjectRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}

	status := domain.ProjectStatus(req.Status)
	switch status {
	case "", domain.ProjectStatusActive, domain.ProjectStatusArchived:
	default:
		respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "unknown status %q", req.Status))

		return
	}

	project, err := g.deps.Storage.UpdateProject(ctx, domain.ProjectID(id), storage.ProjectUpdates{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}
	if project == nil {
		respondError(ctx, w, serrors.With(serrors.ErrNotFound, "project not found"))

		return
	}

	respondJSON(ctx, w, http.StatusOK, project)
}

func (g *Projects) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	project, err := g.deps.Storage.DeleteProject(ctx, domain.ProjectID(id))
	if err != nil {
		respondError(ctx, w, err)

		return
	}
	if project == nil {
		respondError(ctx, w, serrors.With(serrors.ErrNotFound, "project not found"))

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

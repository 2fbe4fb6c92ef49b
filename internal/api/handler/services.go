package handler

import (
	"net/http"

	"clovable/pkg/domain"
	"clovable/pkg/serrors"
)

// Services tracks auxiliary services linked to a project (databases, caches,
// queues provisioned for it).
type Services struct {
	deps Deps
}

func NewServices(deps Deps) *Services {
	return &Services{deps: deps}
}

func (g *Services) Name() string { return "services" }

func (g *Services) Prefix() string { return "" }

func (g *Services) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects/{id}/services", g.list)
	mux.HandleFunc("POST /api/projects/{id}/services", g.register)
}

func (g *Services) list(w http.ResponseWriter, r *http.Request) {
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

	services, err := g.deps.Storage.ServicesByProject(ctx, project.ID)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"items": services})
}

type registerServiceRequest struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

func (g *Services) register(w http.ResponseWriter, r *http.Request) {
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

	var req registerServiceRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}
	if req.Name == "" || req.Kind == "" {
		respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "name and kind are required"))

		return
	}
	if req.Status == "" {
		req.Status = "pending"
	}

	svc, err := g.deps.Storage.StoreService(ctx, domain.ProjectService{
		ProjectID: project.ID,
		Name:      req.Name,
		Kind:      req.Kind,
		Status:    req.Status,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusCreated, svc)
}

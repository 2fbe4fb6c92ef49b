package handler

import (
	"net/http"

	"clovable/pkg/domain"
	"clovable/pkg/serrors"
)

// Integration serves one external provider's connect/status/disconnect
// surface. It is instantiated once per provider so each mounts as its own
// route group.
type Integration struct {
	deps     Deps
	provider domain.IntegrationProvider
}

// NewGitHub returns the GitHub integration group, mounted under /api/github.
func NewGitHub(deps Deps) *Integration {
	return &Integration{deps: deps, provider: domain.ProviderGitHub}
}

// NewVercel returns the Vercel integration group, mounted under /api/vercel.
func NewVercel(deps Deps) *Integration {
	return &Integration{deps: deps, provider: domain.ProviderVercel}
}

func (g *Integration) Name() string { return string(g.provider) }

func (g *Integration) Prefix() string { return "/api/" + string(g.provider) }

func (g *Integration) Register(mux *http.ServeMux) {
	prefix := g.Prefix()
	mux.HandleFunc("POST "+prefix+"/projects/{id}", g.connect)
	mux.HandleFunc("GET "+prefix+"/projects/{id}", g.status)
	mux.HandleFunc("DELETE "+prefix+"/projects/{id}", g.disconnect)
}

type connectRequest struct {
	// ExternalRef is the provider-side identifier (repository slug, Vercel
	// project ID).
	ExternalRef string `json:"externalRef"`
	Token       string `json:"token"`
}

func (g *Integration) connect(w http.ResponseWriter, r *http.Request) {
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

	var req connectRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}
	if req.ExternalRef == "" {
		respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "externalRef is required"))

		return
	}

	integration, err := g.deps.Storage.UpsertIntegration(ctx, domain.Integration{
		ProjectID:   project.ID,
		Provider:    g.provider,
		ExternalRef: req.ExternalRef,
		Token:       req.Token,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, integration)
}

type integrationStatus struct {
	Connected   bool                `json:"connected"`
	Integration *domain.Integration `json:"integration,omitempty"`
}

func (g *Integration) status(w http.ResponseWriter, r *http.Request) {
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

	integration, err := g.deps.Storage.IntegrationByProvider(ctx, project.ID, g.provider)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, integrationStatus{
		Connected:   integration != nil,
		Integration: integration,
	})
}

func (g *Integration) disconnect(w http.ResponseWriter, r *http.Request) {
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

	if err := g.deps.Storage.DeleteIntegration(ctx, project.ID, g.provider); err != nil {
		respondError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"clovable/pkg/domain"
	"clovable/pkg/serrors"
)

// maskedValue replaces secret env-var values in list responses. The real
// value only ever leaves the API inside a deploy payload, never a listing.
const maskedValue = "********"

// EnvVars manages a project's environment variables.
type EnvVars struct {
	deps Deps
}

func NewEnvVars(deps Deps) *EnvVars {
	return &EnvVars{deps: deps}
}

func (g *EnvVars) Name() string { return "env" }

func (g *EnvVars) Prefix() string { return "" }

func (g *EnvVars) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects/{id}/env", g.list)
	mux.HandleFunc("PUT /api/projects/{id}/env/{key}", g.set)
	mux.HandleFunc("DELETE /api/projects/{id}/env/{key}", g.delete)
}

func (g *EnvVars) list(w http.ResponseWriter, r *http.Request) {
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

	vars, err := g.deps.Storage.EnvVarsByProject(ctx, project.ID)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	for i := range vars {
		if vars[i].Secret {
			vars[i].Value = maskedValue
		}
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"items": vars})
}

type setEnvVarRequest struct {
	Value  string `json:"value"`
	Secret bool   `json:"secret"`
}

func (g *EnvVars) set(w http.ResponseWriter, r *http.Request) {
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

	key := r.PathValue("key")
	if key == "" {
		respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "key is required"))

		return
	}

	var req setEnvVarRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}

	stored, err := g.deps.Storage.SetEnvVar(ctx, domain.EnvVar{
		ProjectID: project.ID,
		Key:       key,
		Value:     req.Value,
		Secret:    req.Secret,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	if stored.Secret {
		stored.Value = maskedValue
	}

	respondJSON(ctx, w, http.StatusOK, stored)
}

func (g *EnvVars) delete(w http.ResponseWriter, r *http.Request) {
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

	if err := g.deps.Storage.DeleteEnvVar(ctx, project.ID, r.PathValue("key")); err != nil {
		respondError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

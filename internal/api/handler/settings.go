package handler

import (
	"net/http"

	"clovable/pkg/serrors"
)

// Settings is the global key-value settings group.
type Settings struct {
	deps Deps
}

func NewSettings(deps Deps) *Settings {
	return &Settings{deps: deps}
}

func (g *Settings) Name() string { return "settings" }

func (g *Settings) Prefix() string { return "/api/settings" }

func (g *Settings) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/settings", g.list)
	mux.HandleFunc("GET /api/settings/{key}", g.get)
	mux.HandleFunc("PUT /api/settings/{key}", g.set)
}

func (g *Settings) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := g.deps.Storage.Settings(ctx)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"items": settings})
}

func (g *Settings) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	setting, err := g.deps.Storage.SettingByKey(ctx, r.PathValue("key"))
	if err != nil {
		respondError(ctx, w, err)

		return
	}
	if setting == nil {
		respondError(ctx, w, serrors.With(serrors.ErrNotFound, "setting not found"))

		return
	}

	respondJSON(ctx, w, http.StatusOK, setting)
}

type setSettingRequest struct {
	Value string `json:"value"`
}

func (g *Settings) set(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req setSettingRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}

	setting, err := g.deps.Storage.SetSetting(ctx, r.PathValue("key"), req.Value)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, setting)
}

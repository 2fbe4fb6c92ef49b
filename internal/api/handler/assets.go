package handler

import (
	"net/http"

	"clovable/pkg/domain"
	"clovable/pkg/serrors"
)

// Assets registers and lists asset metadata attached to a project. The blobs
// themselves live outside the API; only descriptors pass through here.
type Assets struct {
	deps Deps
}

func NewAssets(deps Deps) *Assets {
	return &Assets{deps: deps}
}

func (g *Assets) Name() string { return "assets" }

func (g *Assets) Prefix() string { return "" }

func (g *Assets) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects/{id}/assets", g.list)
	mux.HandleFunc("POST /api/projects/{id}/assets", g.register)
}

func (g *Assets) list(w http.ResponseWriter, r *http.Request) {
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

	assets, err := g.deps.Storage.AssetsByProject(ctx, project.ID)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"items": assets})
}

type registerAssetRequest struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	Path        string `json:"path"`
}

func (g *Assets) register(w http.ResponseWriter, r *http.Request) {
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

	var req registerAssetRequest
	if err := decode(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}
	if req.Name == "" || req.Path == "" {
		respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "name and path are required"))

		return
	}

	asset, err := g.deps.Storage.StoreAsset(ctx, domain.Asset{
		ProjectID:   project.ID,
		Name:        req.Name,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		Path:        req.Path,
	})
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusCreated, asset)
}

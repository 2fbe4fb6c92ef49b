package handler

import (
	"net/http"

	"clovable/pkg/domain"
)

// Repo exposes a summary view over a project's recorded commit history. Its
// patterns nest under the projects prefix, so the group itself reports none.
type Repo struct {
	deps Deps
}

func NewRepo(deps Deps) *Repo {
	return &Repo{deps: deps}
}

func (g *Repo) Name() string { return "repo" }

func (g *Repo) Prefix() string { return "" }

func (g *Repo) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects/{id}/repo", g.summary)
}

type repoSummary struct {
	ProjectID   domain.ProjectID `json:"projectId"`
	CommitCount int              `json:"commitCount"`
	Head        *domain.Commit   `json:"head,omitempty"`
}

func (g *Repo) summary(w http.ResponseWriter, r *http.Request) {
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

	commits, err := g.deps.Storage.CommitsByProject(ctx, project.ID, 0)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	out := repoSummary{
		ProjectID:   project.ID,
		CommitCount: len(commits),
	}
	if len(commits) > 0 {
		out.Head = &commits[0]
	}

	respondJSON(ctx, w, http.StatusOK, out)
}

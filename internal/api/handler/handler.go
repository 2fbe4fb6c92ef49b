// Package handler implements the REST route groups mounted on the API
// server. Each group is an opaque unit: it owns its patterns, registers them
// on the shared mux as a whole, and shares collaborators through Deps.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clovable/pkg/domain"
	"clovable/pkg/logger"
	"clovable/pkg/serrors"
	"clovable/pkg/storage"
)

// Deps carries the shared collaborators every route group draws from.
type Deps struct {
	Storage storage.Storage
	Tokens  TokensConfig
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(ctx, "could not encode response body", zap.Error(err))
	}
}

func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, err.Error())
	}

	respondJSON(ctx, w, status, map[string]string{"error": err.Error()})
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not decode request body")
	}

	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

// requireProject loads a project or returns a not-found error, so that
// project-scoped groups reject unknown IDs consistently.
func requireProject(ctx context.Context,
	store storage.ProjectStorage,
	id domain.ProjectID) (*domain.Project, error) {
	project, err := store.ProjectByID(ctx, id)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if project == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	return project, nil
}

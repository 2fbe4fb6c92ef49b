package serrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"clovable/pkg/serrors"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrNotFound, "project %q", "abc")

	require.True(t, errors.Is(err, serrors.ErrNotFound))
	require.False(t, errors.Is(err, serrors.ErrConflict))
	require.Equal(t, `project "abc"`, err.Error())
}

func TestWrap_MatchesCauseAndKind(t *testing.T) {
	cause := errors.New("row not found")
	err := serrors.Wrap(serrors.ErrNotFound, cause, "loading project")

	require.True(t, errors.Is(err, serrors.ErrNotFound))
	require.True(t, errors.Is(err, cause))
	require.Equal(t, "loading project: row not found", err.Error())
	require.Equal(t, serrors.ErrNotFound, err.Kind())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{serrors.With(serrors.ErrNotFound, "x"), http.StatusNotFound},
		{serrors.With(serrors.ErrBadRequest, "x"), http.StatusBadRequest},
		{serrors.With(serrors.ErrConflict, "x"), http.StatusConflict},
		{serrors.With(serrors.ErrUnauthorized, "x"), http.StatusUnauthorized},
		{serrors.With(serrors.ErrInternal, "x"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, serrors.HTTPStatus(tt.err))
	}
}

package bootstrap_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"clovable/internal/bootstrap"
	"clovable/pkg/cors"
	"clovable/pkg/logger"
	"clovable/pkg/termui"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fakeEnsurer struct {
	calls int
	err   error
}

func (f *fakeEnsurer) EnsureSchema(context.Context) error {
	f.calls++

	return f.err
}

func emptyLookup(string) string { return "" }

func TestInitialize_ProvisionsSchemaOnce(t *testing.T) {
	ensurer := &fakeEnsurer{}
	var out bytes.Buffer

	err := bootstrap.Initialize(t.Context(), bootstrap.Options{
		Schema:      ensurer,
		Policy:      cors.Resolve(emptyLookup),
		Lookup:      emptyLookup,
		UI:          termui.New(&out),
		Addr:        ":8080",
		Environment: "development",
	})
	require.NoError(t, err)
	require.Equal(t, 1, ensurer.calls)
}

func TestInitialize_SchemaFailureIsFatal(t *testing.T) {
	ensurer := &fakeEnsurer{err: errors.New("database unreachable")}
	var out bytes.Buffer

	err := bootstrap.Initialize(t.Context(), bootstrap.Options{
		Schema: ensurer,
		Policy: cors.Resolve(emptyLookup),
		Lookup: emptyLookup,
		UI:     termui.New(&out),
	})
	require.Error(t, err)
	require.ErrorContains(t, err, "database unreachable")
	// Nothing is reported when provisioning fails.
	require.Zero(t, out.Len())
}

func TestInitialize_ReportsDebugWarning(t *testing.T) {
	lookup := func(key string) string {
		if key == cors.DebugVar {
			return "true"
		}

		return ""
	}
	var out bytes.Buffer

	err := bootstrap.Initialize(t.Context(), bootstrap.Options{
		Schema: &fakeEnsurer{},
		Policy: cors.Resolve(lookup),
		Lookup: lookup,
		UI:     termui.New(&out),
		Addr:   ":8080",
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "DEBUG_CORS is enabled")
	// The origins summary is for production/development modes only.
	require.NotContains(t, out.String(), "allowed origins")
}

func TestInitialize_ReportPanicDoesNotAbort(t *testing.T) {
	// A lookup that panics corrupts the environment snapshot step only; the
	// sequence still succeeds and later steps still run.
	lookup := func(string) string { panic("broken environment") }
	var out bytes.Buffer

	err := bootstrap.Initialize(t.Context(), bootstrap.Options{
		Schema: &fakeEnsurer{},
		Policy: cors.Policy{AllowedOrigins: []string{"*"}, Mode: cors.ModeDebug},
		Lookup: lookup,
		UI:     termui.New(&out),
		Addr:   ":8080",
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "startup sequence complete")
}

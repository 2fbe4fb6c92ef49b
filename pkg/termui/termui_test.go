package termui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"clovable/pkg/termui"
)

func TestUI_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	ui := termui.New(&buf)

	ui.Info("server ready")
	ui.Success("schema up to date")
	ui.Warning("all origins permitted")
	ui.Panel("Available Endpoints", "REST: /api/projects")
	ui.StatusLine([][2]string{{"Environment", "development"}, {"Port", "8080"}})
	ui.Banner()

	out := buf.String()
	require.Contains(t, out, "server ready")
	require.Contains(t, out, "schema up to date")
	require.Contains(t, out, "all origins permitted")
	require.Contains(t, out, "Available Endpoints")
	require.Contains(t, out, "Environment")
}

func TestNew_NilWriterDefaultsToStdout(t *testing.T) {
	require.NotPanics(t, func() {
		termui.New(nil)
	})
}

// Package bootstrap runs the startup sequence: schema provisioning first,
// then the operator-facing startup report. Provisioning failure aborts the
// process; report failures never do.
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"clovable/pkg/cors"
	"clovable/pkg/logger"
	"clovable/pkg/storage"
	"clovable/pkg/termui"
)

// Options carries everything Initialize needs.
type Options struct {
	// Schema provisions the persistent schema before the server accepts
	// traffic.
	Schema storage.SchemaEnsurer
	// Policy is the cross-origin policy the pipeline will enforce.
	Policy cors.Policy
	// Lookup reads environment variables for the startup snapshot.
	Lookup cors.Lookup
	// UI renders the operator report. Nil writes to stdout.
	UI *termui.UI
	// Addr is the address the server is about to listen on.
	Addr string
	// Environment is the configured runtime environment name.
	Environment string
}

// Initialize runs the startup sequence. Schema provisioning is the only
// fatal step: if it fails, the error is returned and the server must not
// start. Everything after it is reporting, wrapped so that a rendering
// failure cannot take the process down.
func Initialize(ctx context.Context, opts Options) error {
	if err := opts.Schema.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("could not provision schema: %w", err)
	}
	logger.Info(ctx, "schema provisioned")

	report(ctx, opts)

	return nil
}

// report renders the startup report. Each step runs under bestEffort, so a
// panic in one never reaches the caller or skips the remaining steps.
func report(ctx context.Context, opts Options) {
	ui := opts.UI
	if ui == nil {
		ui = termui.New(nil)
	}

	bestEffort(ctx, "banner", func() { ui.Banner() })

	bestEffort(ctx, "cors warning", func() {
		if opts.Policy.Mode == cors.ModeDebug {
			ui.Warning("DEBUG_CORS is enabled: every origin is allowed. Do not run production traffic like this.")
		}
	})

	bestEffort(ctx, "origins", func() {
		if opts.Policy.Mode == cors.ModeDebug {
			return
		}
		ui.Info(fmt.Sprintf("CORS mode %s, allowed origins: %s",
			opts.Policy.Mode, strings.Join(opts.Policy.AllowedOrigins, ", ")))
	})

	bestEffort(ctx, "endpoints", func() {
		ui.Panel("Diagnostics", strings.Join([]string{
			"GET /health       liveness probe",
			"GET /cors-config  live CORS resolution",
			"GET /metrics      prometheus metrics",
			"GET /docs/        API playground",
		}, "\n"))
	})

	bestEffort(ctx, "environment snapshot", func() {
		ui.StatusLine([][2]string{
			{"environment", opts.Environment},
			{"addr", opts.Addr},
			{"DEBUG", opts.Lookup("DEBUG")},
			{cors.OriginsVar, opts.Lookup(cors.OriginsVar)},
			{cors.DebugVar, opts.Lookup(cors.DebugVar)},
			{"cors mode", string(opts.Policy.Mode)},
		})
	})

	bestEffort(ctx, "ready", func() {
		ui.Success("startup sequence complete, serving on " + opts.Addr)
	})
}

// bestEffort runs step and converts a panic into a log line.
func bestEffort(ctx context.Context, name string, step func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn(ctx, "startup report step failed",
				zap.String("step", name),
				zap.Any("panic", r))
		}
	}()

	step()
}

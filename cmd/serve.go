package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clovable/internal/agent"
	"clovable/internal/api"
	"clovable/internal/api/handler"
	"clovable/internal/bootstrap"
	"clovable/internal/config"
	"clovable/internal/worker"
	"clovable/pkg/cors"
	"clovable/pkg/logger"
	"clovable/pkg/storage/postgres"
	"clovable/pkg/termui"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	policy cors.Policy,
	sink *logger.AccessSink) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: handler.Deps{
			Storage: pgsql,
			Tokens: handler.TokensConfig{
				SigningSecret: cfg.Tokens.SigningSecret,
				Issuer:        cfg.Tokens.Issuer,
				DefaultTTL:    cfg.Tokens.DefaultTTL,
			},
		},
		Policy: policy,
		Lookup: os.Getenv,
		Sink:   sink,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			policy := cors.Resolve(os.Getenv)

			// schema provisioning plus the operator startup report; the
			// server must not take traffic when this fails
			opts := api.NewOptions(cfg)
			if err := bootstrap.Initialize(ctx, bootstrap.Options{
				Schema:      pgsql,
				Policy:      policy,
				Lookup:      os.Getenv,
				UI:          termui.New(nil),
				Addr:        opts.Addr,
				Environment: cfg.Environment,
			}); err != nil {
				logger.Fatal(ctx, "could not initialize", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, pgsql.Pool, agent.EchoRunner{}, pgsql, cfg.Agent.MaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			sink := logger.NewAccessSink()
			stopWebserver := setupServer(ctx, cfg, pgsql, policy, sink)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}

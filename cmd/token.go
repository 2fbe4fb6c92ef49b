package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clovable/internal/api/handler"
	"clovable/internal/config"
	"clovable/pkg/domain"
	"clovable/pkg/logger"
)

// tokenCommand constructs the 'token' subcommand that mints a signed service
// token and stores its digest so the token is immediately usable.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mints a service token for the given name",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			name, _ := cmd.Flags().GetString("name")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			tokensCfg := handler.TokensConfig{
				SigningSecret: cfg.Tokens.SigningSecret,
				Issuer:        cfg.Tokens.Issuer,
				DefaultTTL:    cfg.Tokens.DefaultTTL,
			}

			id := domain.TokenID(uuid.New())
			signed, hash, expiresAt, err := handler.MintToken(tokensCfg, id, name, ttl)
			if err != nil {
				logger.Fatal(ctx, "could not mint token", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if _, err := strg.StoreToken(ctx, domain.ServiceToken{
				ID:        id,
				Name:      name,
				Hash:      hash,
				ExpiresAt: expiresAt,
			}); err != nil {
				logger.Fatal(ctx, "could not store token", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("name", "", "Token name (e.g., ci-deployer)")
	cmd.Flags().Duration("ttl", 0, "Token TTL (e.g., 30s, 15m, 1h); 0 uses the configured default")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

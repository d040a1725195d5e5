package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/content_platform_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/content_platform_app/internal/seed"
	"github.com/SscSPs/content_platform_app/pkg/database"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Create tenants and users from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			doc, err := seed.Load(f)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			repos := pgsql.NewRepositoryProvider(pool)
			res, err := seed.Apply(cmd.Context(), doc, repos.TenantRepo, repos.UserRepo, time.Now().UTC())
			if err != nil {
				return err
			}
			logger.Info("Seed applied",
				slog.Int("tenants_created", res.TenantsCreated),
				slog.Int("users_created", res.UsersCreated),
				slog.Int("skipped", res.Skipped))
			fmt.Fprintf(cmd.OutOrStdout(), "tenants created: %d, users created: %d, skipped: %d\n",
				res.TenantsCreated, res.UsersCreated, res.Skipped)
			return nil
		},
	}
}

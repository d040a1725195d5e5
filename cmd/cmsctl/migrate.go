package main

import (
	"github.com/SscSPs/content_platform_app/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  `Applies every pending migration. --steps moves by that many versions instead; a negative value rolls back.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			if err := database.Migrate(pool, cfg.MigrationsPath, steps); err != nil {
				return err
			}
			logger.Info("Migrations finished")
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "Number of versions to move (0 = all the way up)")
	return cmd
}

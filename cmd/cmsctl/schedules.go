package main

import (
	"fmt"

	"github.com/SscSPs/content_platform_app/internal/app"
	"github.com/SscSPs/content_platform_app/internal/scheduler"
	"github.com/spf13/cobra"
)

func newRunSchedulesCmd() *cobra.Command {
	var batchSize int
	cmd := &cobra.Command{
		Use:   "run-schedules",
		Short: "Publish due schedules and archive expired articles once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if batchSize <= 0 {
				batchSize = cfg.SchedulerBatchSize
			}
			application, err := app.New(cmd.Context(), cfg, logger, false)
			if err != nil {
				return err
			}
			defer application.Close()

			runner := scheduler.NewRunner(application.Services.Schedule, cfg.SchedulerInterval, batchSize,
				scheduler.WithLogger(logger))
			report, err := runner.RunOnce(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "published: %d, failed: %d, archived: %d\n",
				report.Published, report.Failed, report.Archived)
			return err
		},
	}
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Maximum schedules per pass (defaults to SCHEDULER_BATCH_SIZE)")
	return cmd
}

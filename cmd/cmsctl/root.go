package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/content_platform_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var debugMode bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cmsctl",
		Short:         "Administration tool for the content platform",
		Long:          `cmsctl applies migrations, seeds tenants and users, mints bearer tokens and runs the publish scheduler once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	root.AddCommand(
		newMigrateCmd(),
		newTokenCmd(),
		newSeedCmd(),
		newRunSchedulesCmd(),
	)
	return root
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// loadConfig is swapped out in tests.
var loadConfig = config.LoadConfig

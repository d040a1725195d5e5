package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/content_platform_app/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var expiry time.Duration
	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint a bearer token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if expiry <= 0 {
				expiry = cfg.JWTExpiryDuration
			}
			token, err := utils.GenerateJWT(args[0], cfg.JWTSecret, expiry, cfg.JWTIssuer)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "Token lifetime (defaults to JWT_EXPIRY_DURATION)")
	return cmd
}

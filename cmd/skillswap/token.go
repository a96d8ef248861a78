package main

import (
	"fmt"

	"skillswap/cfg"
	"skillswap/internal/service/auth"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a user (development)",
	RunE:  runToken,
}

var tokenUserID string

func init() {
	tokenCmd.Flags().StringVarP(&tokenUserID, "user", "u", "", "User id (UUID) to put in the token subject (required)")
	if err := tokenCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	if _, err := uuid.Parse(tokenUserID); err != nil {
		return fmt.Errorf("invalid user id %q: %w", tokenUserID, err)
	}

	config, err := cfg.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	token, err := auth.NewService(config.Auth.JWTSecret, config.Auth.TokenTTL).GenerateToken(tokenUserID)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

package main

import (
	"fmt"
	"os"

	"skillswap/cfg"
	"skillswap/internal/app"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	config, err := cfg.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := app.RunMigrations(config.Postgres.DSN()); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, "Migrations applied")
	return nil
}

// Package main is the skillswap command: the HTTP API server plus
// operational and offline matching tools.
//
//	@title						SkillSwap Matching API
//	@version					1.0
//	@description				Skill-exchange profiles, compatibility matching and skill recommendations.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "skillswap",
	Short:        "Skill-exchange matching service",
	Long:         "skillswap serves the profile and matching API, applies database migrations and runs the matching engine offline over profile snapshots.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

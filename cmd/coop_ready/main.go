// Package main provides the coop-ready command line tool and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coop_ready",
	Short: "ATS resume scoring and keyword gap analysis",
	Long: `coop_ready scores a resume against the keywords of a job description, explains which
missing keywords can be addressed truthfully, and suggests structural fixes for co-op,
career changer and full-time candidates.`,
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

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract ATS keywords from a job description using Gemini",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		kws, err := extractKeywordsFromFile(ctx, extractJobDescription, apiKeyOr(extractAPIKey))
		if err != nil {
			return err
		}
		log.Printf("[KEYWORDS] extracted %d keywords from %s", len(kws), extractJobDescription)

		return writeJSON(kws, extractOut, func(b []byte) error {
			_, err := cmd.OutOrStdout().Write(b)
			return err
		})
	},
}

var (
	extractJobDescription string
	extractAPIKey         string
	extractOut            string
)

func init() {
	extractKeywordsCmd.Flags().StringVarP(&extractJobDescription, "job-description", "j", "", "Path to job description text or HTML")
	extractKeywordsCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	extractKeywordsCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write keywords JSON to this file instead of stdout")

	if err := extractKeywordsCmd.MarkFlagRequired("job-description"); err != nil {
		panic(fmt.Sprintf("failed to mark job-description flag as required: %v", err))
	}

	rootCmd.AddCommand(extractKeywordsCmd)
}

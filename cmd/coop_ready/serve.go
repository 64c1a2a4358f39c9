package main

import (
	"fmt"
	"log"

	"github.com/lawrence-dass/coop-ready/internal/config"
	"github.com/lawrence-dass/coop-ready/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serves the analysis over HTTP:

  GET  /health
  POST /analyze
  POST /keywords/extract
  POST /score/format
  POST /gaps/filter

Keyword extraction needs a Gemini API key; without one /keywords/extract answers 503 and
/analyze requires keywords in the request. Rate limits are read from RATE_LIMIT_* variables.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if servePort < 1 || servePort > 65535 {
			return fmt.Errorf("invalid --port %d", servePort)
		}

		apiKey := apiKeyOr(serveAPIKey)
		if apiKey == "" {
			log.Printf("[SERVE] no Gemini API key configured, keyword extraction disabled")
		}

		srv, err := server.New(server.Config{
			Port:       servePort,
			APIKey:     apiKey,
			PolicyPath: servePolicy,
		})
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
		return srv.Start()
	},
}

var (
	servePort   int
	servePolicy string
	serveAPIKey string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&servePolicy, "policy", "", "Path to a gap policy JSON overriding the built-in one")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(serveCmd)
}

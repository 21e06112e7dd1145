package cli

import (
	"fmt"

	"cvision/internal/ai"
	"cvision/internal/server"
	"cvision/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for resume scoring and analysis",
	Long: `Start an HTTP server that provides REST API endpoints for resume scoring,
job matching, and AI-assisted generation.

Available endpoints:
- POST /score: Score a resume against ATS heuristics
- POST /match: Match a resume against a job description
- GET /keywords: List the keyword dictionary for an industry
- POST /suggest: Generate AI suggestions for a resume
- POST /cover-letter: Generate a cover letter
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info

TLS Configuration:
- Use --cert-file and --key-file for TLS certificates; both enable HTTPS`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("cert-file", "", "Server certificate file (PEM, overrides config)")
	serveCmd.Flags().String("key-file", "", "Server private key file (PEM, overrides config)")
	serveCmd.Flags().String("data-dir", "", "Store data directory (overrides config)")

	// Bind flags to viper config keys
	bindFlag := func(key, flagName string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(flagName)); err != nil {
			panic(err)
		}
	}

	bindFlag("server.port", "port")
	bindFlag("server.host", "host")
	bindFlag("server.tls.certfile", "cert-file")
	bindFlag("server.tls.keyfile", "key-file")
	bindFlag("store.datadir", "data-dir")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	aiService, err := ai.NewService(&cfg.AI, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer func() {
		if err := aiService.Close(); err != nil {
			logger.LogError(err, "Failed to close AI service")
		}
	}()

	blobStore, err := store.New(cfg.Store.DataDir, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	return server.NewServer(cfg, Version, aiService, blobStore, logger).Start()
}

package cli

import (
	"context"

	"cvision/internal/config"
	"cvision/internal/errors"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "cvision",
	Short: "A CLI tool for building and scoring ATS-friendly resumes",
	Long: `Cvision is a command-line tool for working with structured resume data.
It scores resumes against ATS heuristics, matches them against job
descriptions, and generates AI-assisted suggestions and cover letters
with a deterministic local fallback when no AI provider is configured.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(coverLetterCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}

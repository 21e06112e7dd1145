package cli

import (
	"context"
	"fmt"

	"cvision/internal/ai"
	"cvision/internal/common"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [resume-file]",
	Short: "Generate AI suggestions for a resume",
	Long: `Generate a tailored professional summary, skill recommendations, and
achievement examples for a resume targeting a specific role. The command
takes one argument: the path to a resume file in JSON format.

When no AI API key is configured, or the AI provider fails, deterministic
locally generated suggestions are returned instead and marked as such.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if suggestRole == "" {
			return fmt.Errorf("--role is required")
		}
		// Apply default format if not specified
		if suggestConfig.OutputFormat == "" {
			suggestConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(suggestConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSuggest,
}

var (
	suggestConfig   common.CommandConfig
	suggestRole     string
	suggestIndustry string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	suggestCmd.Flags().StringVar(&suggestConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	suggestCmd.Flags().StringVar(&suggestRole, "role", "", "Target role to tailor suggestions for (required)")
	suggestCmd.Flags().StringVar(&suggestIndustry, "industry", "", "Target industry for keyword emphasis")

	// Add completion for format flag
	_ = suggestCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSuggest(cmd *cobra.Command, args []string) error {
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

	createInput := func(contents []string) (ai.SuggestionInput, error) {
		if len(contents) != 1 {
			return ai.SuggestionInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		data, err := common.ParseResumeData(contents[0])
		if err != nil {
			return ai.SuggestionInput{}, err
		}
		return ai.SuggestionInput{
			ResumeData:     data,
			TargetRole:     suggestRole,
			TargetIndustry: suggestIndustry,
		}, nil
	}

	logDetails := func(input ai.SuggestionInput, cfg common.CommandConfig) {
		logger.Info("Starting suggestion generation",
			"target_role", input.TargetRole,
			"target_industry", input.TargetIndustry,
			"output_format", cfg.OutputFormat)
	}

	suggestOperation := func(ctx context.Context, input ai.SuggestionInput) (ai.SuggestionResult, error) {
		return aiService.Suggest(ctx, input)
	}

	err = common.RunEngineCommand(
		cmd.Context(),
		logger,
		suggestConfig,
		args,
		createInput,
		suggestOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate suggestions: %w", err)
	}
	logger.Info("Suggestion generation completed successfully")
	return nil
}

package cli

import (
	"context"
	"fmt"

	"cvision/internal/ai"
	"cvision/internal/common"
	"cvision/internal/store"

	"github.com/spf13/cobra"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter [resume-file]",
	Short: "Generate a cover letter for a specific position",
	Long: `Generate a cover letter from a resume, tailored to a target company and
position. The command takes one argument: the path to a resume file in
JSON format.

When no AI API key is configured, or the AI provider fails, a deterministic
locally generated letter is returned instead and marked as such. Use --save
to persist the generated letter to the local store.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if coverLetterCompany == "" {
			return fmt.Errorf("--company is required")
		}
		if coverLetterPosition == "" {
			return fmt.Errorf("--position is required")
		}
		// Apply default format if not specified
		if coverLetterConfig.OutputFormat == "" {
			coverLetterConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(coverLetterConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runCoverLetter,
}

var (
	coverLetterConfig   common.CommandConfig
	coverLetterCompany  string
	coverLetterPosition string
	coverLetterSave     bool
)

func init() {
	coverLetterCmd.Flags().StringVarP(&coverLetterConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	coverLetterCmd.Flags().StringVar(&coverLetterConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	coverLetterCmd.Flags().StringVar(&coverLetterCompany, "company", "", "Target company name (required)")
	coverLetterCmd.Flags().StringVar(&coverLetterPosition, "position", "", "Target position title (required)")
	coverLetterCmd.Flags().BoolVar(&coverLetterSave, "save", false, "Save the generated letter to the local store")

	// Add completion for format flag
	_ = coverLetterCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runCoverLetter(cmd *cobra.Command, args []string) error {
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

	createInput := func(contents []string) (ai.CoverLetterInput, error) {
		if len(contents) != 1 {
			return ai.CoverLetterInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		data, err := common.ParseResumeData(contents[0])
		if err != nil {
			return ai.CoverLetterInput{}, err
		}
		return ai.CoverLetterInput{
			ResumeData:     data,
			TargetCompany:  coverLetterCompany,
			TargetPosition: coverLetterPosition,
		}, nil
	}

	logDetails := func(input ai.CoverLetterInput, cfg common.CommandConfig) {
		logger.Info("Starting cover letter generation",
			"target_company", input.TargetCompany,
			"target_position", input.TargetPosition,
			"output_format", cfg.OutputFormat)
	}

	coverLetterOperation := func(ctx context.Context, input ai.CoverLetterInput) (ai.CoverLetterResult, error) {
		result, err := aiService.CoverLetter(ctx, input)
		if err != nil {
			return ai.CoverLetterResult{}, err
		}

		if coverLetterSave {
			blobStore, err := store.New(cfg.Store.DataDir, logger)
			if err != nil {
				return ai.CoverLetterResult{}, fmt.Errorf("failed to open store: %w", err)
			}
			name := fmt.Sprintf("%s - %s", input.TargetCompany, input.TargetPosition)
			if _, err := blobStore.SaveCoverLetter(name, input.TargetCompany, input.TargetPosition, result.Content); err != nil {
				return ai.CoverLetterResult{}, fmt.Errorf("failed to save cover letter: %w", err)
			}
			logger.Info("Cover letter saved to store", "name", name)
		}

		return result, nil
	}

	err = common.RunEngineCommand(
		cmd.Context(),
		logger,
		coverLetterConfig,
		args,
		createInput,
		coverLetterOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate cover letter: %w", err)
	}
	logger.Info("Cover letter generation completed successfully")
	return nil
}

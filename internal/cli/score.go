package cli

import (
	"context"
	"fmt"

	"cvision/internal/ats"
	"cvision/internal/common"
	"cvision/internal/resume"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a resume against ATS heuristics",
	Long: `Score a structured resume file against ATS-style heuristics.
The command takes one argument: the path to a resume file in JSON format.

The score has three components:
- Formatting: completeness of contact info, summary, and entry quality
- Keywords: coverage of the industry keyword dictionary
- Readability: summary length, achievement counts, and quantified results

Each component is an integer in [0, 100]; the overall score is their average.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (resume.ResumeData, error) {
		if len(contents) != 1 {
			return resume.ResumeData{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return common.ParseResumeData(contents[0])
	}

	logDetails := func(input resume.ResumeData, cfg common.CommandConfig) {
		logger.Info("Starting ATS scoring",
			"experience_count", len(input.Experiences),
			"skill_count", len(input.Skills),
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, input resume.ResumeData) (resume.ATSScore, error) {
		return ats.Score(input), nil
	}

	err := common.RunEngineCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("ATS scoring completed successfully")
	return nil
}

package cli

import (
	"context"
	"fmt"

	"cvision/internal/common"
	"cvision/internal/match"
	"cvision/internal/resume"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-description-file]",
	Short: "Match a resume against a job description",
	Long: `Match a structured resume against a job description and report how well
they align. The command takes two arguments: the path to a resume file in
JSON format and the path to a plain text job description file.

The result includes a match score, the keywords the resume already covers,
the keywords it is missing, and suggestions for closing the gap.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

type matchInput struct {
	resumeData     resume.ResumeData
	jobDescription string
}

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (matchInput, error) {
		if len(contents) != 2 {
			return matchInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		data, err := common.ParseResumeData(contents[0])
		if err != nil {
			return matchInput{}, err
		}
		return matchInput{
			resumeData:     data,
			jobDescription: contents[1],
		}, nil
	}

	logDetails := func(input matchInput, cfg common.CommandConfig) {
		logger.Info("Starting job match analysis",
			"experience_count", len(input.resumeData.Experiences),
			"job_chars", len(input.jobDescription),
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input matchInput) (resume.JobMatch, error) {
		return match.Analyze(input.resumeData, input.jobDescription), nil
	}

	err := common.RunEngineCommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze job match: %w", err)
	}
	logger.Info("Job match analysis completed successfully")
	return nil
}

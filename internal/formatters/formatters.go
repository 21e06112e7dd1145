package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"cvision/internal/ai"
	"cvision/internal/resume"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ATSScore", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSScore", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "JobMatch", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "JobMatch", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "SuggestionResult", &SuggestionTextFormatter{})
	registry.RegisterFormatter("markdown", "SuggestionResult", &SuggestionMarkdownFormatter{})
	registry.RegisterFormatter("text", "CoverLetterResult", &CoverLetterTextFormatter{})
	registry.RegisterFormatter("markdown", "CoverLetterResult", &CoverLetterTextFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case resume.ATSScore:
		return "ATSScore"
	case resume.JobMatch:
		return "JobMatch"
	case ai.SuggestionResult:
		return "SuggestionResult"
	case ai.CoverLetterResult:
		return "CoverLetterResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ScoreTextFormatter handles text formatting for ATS scores
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(resume.ATSScore)
	if !ok {
		return "", fmt.Errorf("expected ATSScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Overall: %d/100\n\n", result.Overall))
	output.WriteString(fmt.Sprintf("Formatting:  %d/100\n", result.Formatting))
	output.WriteString(fmt.Sprintf("Keywords:    %d/100\n", result.Keywords))
	output.WriteString(fmt.Sprintf("Readability: %d/100\n\n", result.Readability))

	if len(result.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	} else {
		output.WriteString("No suggestions. Your resume is in good shape.\n")
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ATSScore"
}

// ScoreMarkdownFormatter handles markdown formatting for ATS scores
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(resume.ATSScore)
	if !ok {
		return "", fmt.Errorf("expected ATSScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Score\n\n")
	output.WriteString(fmt.Sprintf("**Overall:** %d/100\n\n", result.Overall))
	output.WriteString("| Component | Score |\n")
	output.WriteString("|-----------|-------|\n")
	output.WriteString(fmt.Sprintf("| Formatting | %d/100 |\n", result.Formatting))
	output.WriteString(fmt.Sprintf("| Keywords | %d/100 |\n", result.Keywords))
	output.WriteString(fmt.Sprintf("| Readability | %d/100 |\n\n", result.Readability))

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	} else {
		output.WriteString("## No Suggestions\n\nYour resume is in good shape.\n")
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ATSScore"
}

// MatchTextFormatter handles text formatting for job match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(resume.JobMatch)
	if !ok {
		return "", fmt.Errorf("expected JobMatch, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB MATCH ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Match Score: %d/100\n\n", result.Score))

	if len(result.MatchedKeywords) > 0 {
		output.WriteString("Matched Keywords:\n")
		for _, keyword := range result.MatchedKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("Missing Keywords:\n")
		for _, keyword := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "JobMatch"
}

// MatchMarkdownFormatter handles markdown formatting for job match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(resume.JobMatch)
	if !ok {
		return "", fmt.Errorf("expected JobMatch, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Match Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Match Score:** %d/100\n\n", result.Score))

	if len(result.MatchedKeywords) > 0 {
		output.WriteString("## Matched Keywords\n\n")
		for _, keyword := range result.MatchedKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("## Missing Keywords\n\n")
		for _, keyword := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "JobMatch"
}

// SuggestionTextFormatter handles text formatting for AI suggestions
type SuggestionTextFormatter struct{}

func (stf *SuggestionTextFormatter) Format(data any) (string, error) {
	result, ok := data.(ai.SuggestionResult)
	if !ok {
		return "", fmt.Errorf("expected SuggestionResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME SUGGESTIONS ===\n\n")
	if result.Fallback {
		output.WriteString("(generated locally, AI service unavailable)\n\n")
	}

	output.WriteString("Suggested Summary:\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	if len(result.Skills) > 0 {
		output.WriteString("Skills to Add:\n")
		for _, skill := range result.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Achievements) > 0 {
		output.WriteString("Achievement Ideas:\n")
		for _, achievement := range result.Achievements {
			output.WriteString(fmt.Sprintf("- %s\n", achievement))
		}
	}

	return output.String(), nil
}

func (stf *SuggestionTextFormatter) SupportedType() string {
	return "SuggestionResult"
}

// SuggestionMarkdownFormatter handles markdown formatting for AI suggestions
type SuggestionMarkdownFormatter struct{}

func (smf *SuggestionMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(ai.SuggestionResult)
	if !ok {
		return "", fmt.Errorf("expected SuggestionResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Suggestions\n\n")
	if result.Fallback {
		output.WriteString("_Generated locally, AI service unavailable._\n\n")
	}

	output.WriteString("## Suggested Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	if len(result.Skills) > 0 {
		output.WriteString("## Skills to Add\n\n")
		for _, skill := range result.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Achievements) > 0 {
		output.WriteString("## Achievement Ideas\n\n")
		for _, achievement := range result.Achievements {
			output.WriteString(fmt.Sprintf("- %s\n", achievement))
		}
	}

	return output.String(), nil
}

func (smf *SuggestionMarkdownFormatter) SupportedType() string {
	return "SuggestionResult"
}

// CoverLetterTextFormatter renders a cover letter as plain text. The letter
// body is already paragraph formatted, so markdown output is identical.
type CoverLetterTextFormatter struct{}

func (clf *CoverLetterTextFormatter) Format(data any) (string, error) {
	result, ok := data.(ai.CoverLetterResult)
	if !ok {
		return "", fmt.Errorf("expected CoverLetterResult, got %T", data)
	}

	var output strings.Builder
	if result.Fallback {
		output.WriteString("(generated locally, AI service unavailable)\n\n")
	}
	output.WriteString(result.Content)
	output.WriteString("\n")

	return output.String(), nil
}

func (clf *CoverLetterTextFormatter) SupportedType() string {
	return "CoverLetterResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()

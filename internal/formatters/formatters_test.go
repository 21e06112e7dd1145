package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"cvision/internal/ai"
	"cvision/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleScore = resume.ATSScore{
	Overall:     73,
	Formatting:  100,
	Keywords:    20,
	Readability: 100,
	Suggestions: []string{"Consider adding more industry-specific keywords related to software"},
}

var sampleMatch = resume.JobMatch{
	Score:           50,
	MatchedKeywords: []string{"golang", "kubernetes"},
	MissingKeywords: []string{"terraform", "ansible"},
	Suggestions:     []string{"Try incorporating these keywords: terraform, ansible"},
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleScore, "json")
	require.NoError(t, err)

	var decoded resume.ATSScore
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, sampleScore, decoded)
}

func TestScoreTextFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleScore, "text")
	require.NoError(t, err)

	assert.Contains(t, output, "Overall: 73/100")
	assert.Contains(t, output, "Keywords:    20/100")
	assert.Contains(t, output, "1. Consider adding more industry-specific keywords")
}

func TestScoreMarkdownFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleScore, "markdown")
	require.NoError(t, err)

	assert.Contains(t, output, "# ATS Compatibility Score")
	assert.Contains(t, output, "| Formatting | 100/100 |")
	assert.Contains(t, output, "## Suggestions")
}

func TestScoreFormattersWithoutSuggestions(t *testing.T) {
	registry := NewFormatterRegistry()
	clean := resume.ATSScore{Overall: 100, Formatting: 100, Keywords: 100, Readability: 100}

	text, err := registry.Format(clean, "text")
	require.NoError(t, err)
	assert.Contains(t, text, "No suggestions")

	md, err := registry.Format(clean, "markdown")
	require.NoError(t, err)
	assert.Contains(t, md, "## No Suggestions")
}

func TestMatchFormatters(t *testing.T) {
	registry := NewFormatterRegistry()

	text, err := registry.Format(sampleMatch, "text")
	require.NoError(t, err)
	assert.Contains(t, text, "Match Score: 50/100")
	assert.Contains(t, text, "- golang")
	assert.Contains(t, text, "Missing Keywords:")

	md, err := registry.Format(sampleMatch, "markdown")
	require.NoError(t, err)
	assert.Contains(t, md, "# Job Match Analysis")
	assert.Contains(t, md, "## Matched Keywords")
}

func TestSuggestionFormattersMarkFallback(t *testing.T) {
	registry := NewFormatterRegistry()
	result := ai.SuggestionResult{
		Summary:      "Results-driven engineer.",
		Skills:       []string{"Leadership"},
		Achievements: []string{"Cut costs by 10%"},
		Fallback:     true,
	}

	text, err := registry.Format(result, "text")
	require.NoError(t, err)
	assert.Contains(t, text, "generated locally")
	assert.Contains(t, text, "Skills to Add:")

	md, err := registry.Format(result, "markdown")
	require.NoError(t, err)
	assert.Contains(t, md, "_Generated locally")

	result.Fallback = false
	text, err = registry.Format(result, "text")
	require.NoError(t, err)
	assert.NotContains(t, text, "generated locally")
}

func TestCoverLetterFormatterSameForTextAndMarkdown(t *testing.T) {
	registry := NewFormatterRegistry()
	result := ai.CoverLetterResult{Content: "Dear Hiring Manager,\n\nBody.\n\nSincerely,\nSam"}

	text, err := registry.Format(result, "text")
	require.NoError(t, err)
	md, err := registry.Format(result, "markdown")
	require.NoError(t, err)

	assert.Equal(t, text, md)
	assert.True(t, strings.HasPrefix(text, "Dear Hiring Manager,"))
}

func TestUnknownTypeFallsBackToJSON(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(map[string]string{"key": "value"}, "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"key": "value"`)
}

func TestUnknownFormatErrors(t *testing.T) {
	registry := NewFormatterRegistry()

	_, err := registry.Format(sampleScore, "yaml")
	assert.Error(t, err)
}

func TestGetSupportedFormats(t *testing.T) {
	registry := NewFormatterRegistry()

	formats := registry.GetSupportedFormats()
	assert.ElementsMatch(t, []string{"json", "text", "markdown"}, formats)
}

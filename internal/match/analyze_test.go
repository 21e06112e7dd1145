package match

import (
	"fmt"
	"strings"
	"testing"

	"cvision/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumeWithSkills(names ...string) resume.ResumeData {
	data := resume.DefaultResumeData()
	for i, name := range names {
		data.Skills = append(data.Skills, resume.Skill{
			ID:   fmt.Sprintf("s%d", i),
			Name: name,
		})
	}
	return data
}

func TestAnalyzeEmptyJobDescription(t *testing.T) {
	result := Analyze(resumeWithSkills("Golang"), "")

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.MissingKeywords)

	// Zero candidates still trips the low-score condition
	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0], "tailoring")
}

func TestAnalyzePartitionsKeywords(t *testing.T) {
	data := resumeWithSkills("Golang", "Kubernetes")
	result := Analyze(data, "Seeking golang engineer familiar kubernetes terraform")

	assert.Contains(t, result.MatchedKeywords, "golang")
	assert.Contains(t, result.MatchedKeywords, "kubernetes")
	assert.Contains(t, result.MissingKeywords, "terraform")
	assert.NotContains(t, result.MissingKeywords, "golang")
}

func TestAnalyzeScoreIsMatchedRatio(t *testing.T) {
	data := resumeWithSkills("Golang")

	// Candidates: seeking, golang, engineers, terraform (all distinct, length > 3)
	result := Analyze(data, "seeking golang engineers terraform")

	assert.Equal(t, 25, result.Score)
}

func TestAnalyzeDropsShortTokensAndStopWords(t *testing.T) {
	result := Analyze(resume.DefaultResumeData(), "we are the with through golang a an it")

	assert.Equal(t, []string{"golang"}, result.MissingKeywords)
}

func TestAnalyzeDeduplicatesPreservingOrder(t *testing.T) {
	result := Analyze(resume.DefaultResumeData(), "terraform golang terraform golang ansible")

	assert.Equal(t, []string{"terraform", "golang", "ansible"}, result.MissingKeywords)
}

func TestAnalyzeCandidateCap(t *testing.T) {
	// 30 unknown tokens first, then 5 tokens the resume covers. If the
	// overflow tokens were considered the score would be round(5/35*100)=14.
	overflow := []string{"golangskill", "pythonskill", "rustskill", "javaskill", "rubyskill"}
	data := resumeWithSkills(overflow...)

	var b strings.Builder
	for i := range 30 {
		fmt.Fprintf(&b, "keyword%02d ", i)
	}
	b.WriteString(strings.Join(overflow, " "))

	result := Analyze(data, b.String())

	// Only the first 30 candidates count, so nothing matches
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.MatchedKeywords)

	// Display list capped at 10, in first-occurrence order
	assert.Len(t, result.MissingKeywords, 10)
	assert.Equal(t, "keyword00", result.MissingKeywords[0])
	assert.Equal(t, "keyword09", result.MissingKeywords[9])
}

func TestAnalyzeSuggestions(t *testing.T) {
	t.Run("missing keywords suggestion lists at most five", func(t *testing.T) {
		result := Analyze(resume.DefaultResumeData(), "golang python kubernetes terraform ansible prometheus grafana")

		var keywordSuggestion string
		for _, s := range result.Suggestions {
			if strings.HasPrefix(s, "Try incorporating") {
				keywordSuggestion = s
			}
		}
		require.NotEmpty(t, keywordSuggestion)
		listed := strings.Split(strings.TrimPrefix(keywordSuggestion, "Try incorporating these keywords: "), ", ")
		assert.Len(t, listed, 5)
	})

	t.Run("strong match gets positive suggestion", func(t *testing.T) {
		data := resumeWithSkills("Golang", "Python", "Kubernetes", "Terraform", "Ansible", "Prometheus")
		result := Analyze(data, "golang python kubernetes terraform ansible prometheus")

		assert.Equal(t, 100, result.Score)
		assert.Contains(t, result.Suggestions, "Good keyword match! Your resume aligns well with this position")
	})
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	data := resumeWithSkills("Golang", "Kubernetes")
	job := "Seeking golang engineer with kubernetes experience and terraform knowledge"

	first := Analyze(data, job)
	second := Analyze(data, job)
	assert.Equal(t, first, second)
}

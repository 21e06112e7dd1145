package ats

import (
	"strings"
	"testing"

	"cvision/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeResume() resume.ResumeData {
	data := resume.DefaultResumeData()
	data.PersonalInfo = resume.PersonalInfo{
		FullName: "Sam Okafor",
		Email:    "sam@example.com",
		Phone:    "555-0101",
		Location: "Austin, TX",
		Summary: "Engineering leader with a focus on leadership, communication, teamwork, " +
			"problem-solving, project management, analytical thinking, and organization.",
	}
	data.Experiences = []resume.Experience{
		{
			ID:           "exp-1",
			Company:      "Acme",
			Position:     "Engineering Manager",
			StartDate:    "2019-03",
			Current:      true,
			Description:  "Led a platform team through two major replatforming efforts.",
			Achievements: []string{"Cut release cycle from 2 weeks to 2 days"},
		},
	}
	data.Skills = []resume.Skill{
		{ID: "s1", Name: "Mentoring", Level: resume.SkillExpert, Category: "Leadership"},
		{ID: "s2", Name: "Roadmapping", Level: resume.SkillAdvanced, Category: "Planning"},
		{ID: "s3", Name: "Hiring", Level: resume.SkillAdvanced, Category: "Leadership"},
		{ID: "s4", Name: "Budgeting", Level: resume.SkillIntermediate, Category: "Operations"},
		{ID: "s5", Name: "Facilitation", Level: resume.SkillAdvanced, Category: "Communication"},
	}
	return data
}

func TestScoreEmptyResume(t *testing.T) {
	result := Score(resume.DefaultResumeData())

	// Formatting loses every penalty: 100 - 20 - 15 - 15 - 25 - 10
	assert.Equal(t, 15, result.Formatting)
	assert.Equal(t, 0, result.Keywords)
	assert.Equal(t, 100, result.Readability)
	assert.Equal(t, 38, result.Overall)

	// Six conditions fire but the list is capped at five
	assert.Len(t, result.Suggestions, 5)
}

func TestScoreComponentBounds(t *testing.T) {
	for _, data := range []resume.ResumeData{
		{},
		resume.DefaultResumeData(),
		completeResume(),
	} {
		result := Score(data)
		assert.GreaterOrEqual(t, result.Formatting, 0)
		assert.LessOrEqual(t, result.Formatting, 100)
		assert.GreaterOrEqual(t, result.Keywords, 0)
		assert.LessOrEqual(t, result.Keywords, 100)
		assert.GreaterOrEqual(t, result.Readability, 0)
		assert.LessOrEqual(t, result.Readability, 100)
		assert.GreaterOrEqual(t, result.Overall, 0)
		assert.LessOrEqual(t, result.Overall, 100)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	data := completeResume()
	first := Score(data)
	second := Score(data)
	assert.Equal(t, first, second)
}

func TestScoreCompleteResume(t *testing.T) {
	result := Score(completeResume())

	// All general industry keywords appear in the summary
	assert.Equal(t, 100, result.Formatting)
	assert.Equal(t, 100, result.Keywords)
	assert.Equal(t, 100, result.Readability)
	assert.Equal(t, 100, result.Overall)
	assert.Empty(t, result.Suggestions)
}

func TestScorePartialKeywordCoverage(t *testing.T) {
	data := completeResume()
	data.TargetIndustry = "Software"
	data.PersonalInfo.Summary = "Backend engineer shipping services over a git based api platform for enterprise customers."

	result := Score(data)

	// 2 of 10 software keywords matched
	assert.Equal(t, 100, result.Formatting)
	assert.Equal(t, 20, result.Keywords)
	assert.Equal(t, 100, result.Readability)
	assert.Equal(t, 73, result.Overall)

	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions[0], "software")
}

func TestScoreReadabilityPenalties(t *testing.T) {
	data := completeResume()
	data.Experiences = []resume.Experience{
		{
			ID:          "exp-1",
			Company:     "Acme",
			Position:    "Engineer",
			Description: strings.Repeat("x", 501),
		},
	}
	data.PersonalInfo.Summary = strings.Repeat("leadership communication teamwork problem-solving project management analytical organization ", 4)

	result := Score(data)

	// Long description, no achievements, long summary: 100 - 10 - 5 - 10
	assert.Equal(t, 75, result.Readability)
	assert.Contains(t, result.Suggestions, "Experience 1: Add quantifiable achievements")
	assert.Contains(t, result.Suggestions, "Consider shortening your professional summary")
}

func TestScoreFormattingPenaltyOrder(t *testing.T) {
	data := resume.DefaultResumeData()
	data.PersonalInfo.Email = "a@b.com"

	result := Score(data)

	require.NotEmpty(t, result.Suggestions)
	assert.Equal(t, "Include a phone number for easy contact", result.Suggestions[0])
}

func TestIndustryKeywords(t *testing.T) {
	tests := []struct {
		industry string
		want     string
	}{
		{"software", "agile"},
		{"Software", "agile"},
		{"marketing", "seo"},
		{"", "leadership"},
		{"aerospace", "leadership"},
	}

	for _, tt := range tests {
		keywords := IndustryKeywords(tt.industry)
		assert.Contains(t, keywords, tt.want, "industry %q", tt.industry)
	}
}

func TestResolveIndustry(t *testing.T) {
	assert.Equal(t, "general", ResolveIndustry(""))
	assert.Equal(t, "software", ResolveIndustry("Software"))
	assert.Equal(t, "aerospace", ResolveIndustry("Aerospace"))
}

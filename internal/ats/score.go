// Package ats scores a resume against heuristics approximating what
// applicant tracking systems are believed to check: contact completeness,
// industry keyword coverage, and readability of the prose sections.
package ats

import (
	"fmt"
	"math"

	"cvision/internal/resume"
)

const maxSuggestions = 5

// Score computes the composite ATS score for a resume. It is a pure
// function: no I/O, no retained state, identical output for identical input.
// Every field of the input may be empty; an all-empty resume is valid and
// simply scores low.
func Score(data resume.ResumeData) resume.ATSScore {
	searchText := resume.SearchText(data)
	suggestions := []string{}

	formatting := scoreFormatting(data, &suggestions)
	keywords := scoreKeywords(data, searchText, &suggestions)
	readability := scoreReadability(data, &suggestions)

	// Sub-scores are floored after all penalty checks have run, so a
	// suggestion still fires even when the running total is already at 0.
	formatting = max(formatting, 0)
	readability = max(readability, 0)

	overall := int(math.Round(float64(formatting+keywords+readability) / 3.0))

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return resume.ATSScore{
		Overall:     overall,
		Formatting:  formatting,
		Keywords:    keywords,
		Readability: readability,
		Suggestions: suggestions,
	}
}

// scoreFormatting checks structural completeness. Starts at 100 and each
// missing element subtracts a fixed penalty and appends one suggestion, in
// this exact order.
func scoreFormatting(data resume.ResumeData, suggestions *[]string) int {
	score := 100

	if data.PersonalInfo.Email == "" {
		score -= 20
		*suggestions = append(*suggestions, "Add an email address to your contact information")
	}
	if data.PersonalInfo.Phone == "" {
		score -= 15
		*suggestions = append(*suggestions, "Include a phone number for easy contact")
	}
	if len(data.PersonalInfo.Summary) < 50 {
		score -= 15
		*suggestions = append(*suggestions, "Write a professional summary of at least 50 characters")
	}
	if len(data.Experiences) == 0 {
		score -= 25
		*suggestions = append(*suggestions, "Add work experience to strengthen your resume")
	}
	if len(data.Skills) < 5 {
		score -= 10
		*suggestions = append(*suggestions, "Add more skills (aim for at least 5 relevant skills)")
	}

	return score
}

// scoreKeywords measures coverage of the industry keyword dictionary within
// the flattened resume text.
func scoreKeywords(data resume.ResumeData, searchText string, suggestions *[]string) int {
	industry := ResolveIndustry(data.TargetIndustry)
	keywords := IndustryKeywords(industry)

	matched := 0
	for _, keyword := range keywords {
		if resume.ContainsKeyword(searchText, keyword) {
			matched++
		}
	}

	score := int(math.Round(float64(matched) / float64(len(keywords)) * 100))
	score = min(score, 100)

	if score < 50 {
		*suggestions = append(*suggestions,
			fmt.Sprintf("Consider adding more industry-specific keywords related to %s", industry))
	}

	return score
}

// scoreReadability penalizes over-long prose. The per-experience checks run
// first, in sequence order; the summary length check always runs last.
func scoreReadability(data resume.ResumeData, suggestions *[]string) int {
	score := 100

	for i, exp := range data.Experiences {
		if len(exp.Description) > 500 {
			score -= 10
			*suggestions = append(*suggestions,
				fmt.Sprintf("Experience %d: Consider making the description more concise", i+1))
		}
		if len(exp.Achievements) == 0 {
			score -= 5
			*suggestions = append(*suggestions,
				fmt.Sprintf("Experience %d: Add quantifiable achievements", i+1))
		}
	}

	if summary := data.PersonalInfo.Summary; summary != "" && len(summary) > 300 {
		score -= 10
		*suggestions = append(*suggestions, "Consider shortening your professional summary")
	}

	return score
}

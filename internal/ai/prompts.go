package ai

import (
	"fmt"
	"strings"

	"cvision/internal/resume"
)

const suggestionsSystemPrompt = `You are an expert career coach and resume writer. Generate tailored suggestions to improve a resume based on the target role and industry. Be specific, actionable, and professional. Return JSON only.`

const suggestionsUserPromptTemplate = `Based on this resume data and target role, provide suggestions:

Resume Summary: %s
Current Skills: %s
Experience: %s

Target Role: %s
Target Industry: %s

Return a JSON object with:
- summary: A compelling 2-3 sentence professional summary tailored to the target role
- skills: Array of 5 relevant skills to add (that aren't already listed)
- achievements: Array of 3 achievement bullet points with metrics`

const coverLetterSystemPrompt = `You are an expert cover letter writer. Create professional, personalized cover letters that highlight relevant experience and show genuine interest in the company.`

const coverLetterUserPromptTemplate = `Write a professional cover letter for:

Applicant Name: %s
Current Role: %s
Key Skills: %s
Summary: %s

Target Company: %s
Target Position: %s

Write a compelling cover letter (3-4 paragraphs) that:
1. Opens with enthusiasm for the specific role
2. Highlights relevant experience and achievements
3. Shows knowledge/interest in the company
4. Closes with a call to action

Return only the cover letter text, properly formatted with paragraphs.`

// buildSuggestionsPrompt renders the user prompt for a suggestion request.
// Missing resume sections are named explicitly so the model does not invent
// them.
func buildSuggestionsPrompt(input SuggestionInput) string {
	summary := input.ResumeData.PersonalInfo.Summary
	if summary == "" {
		summary = "None provided"
	}

	skills := skillNames(input.ResumeData.Skills, 0)
	skillLine := "None"
	if len(skills) > 0 {
		skillLine = strings.Join(skills, ", ")
	}

	expLine := "None"
	if len(input.ResumeData.Experiences) > 0 {
		entries := make([]string, 0, len(input.ResumeData.Experiences))
		for _, exp := range input.ResumeData.Experiences {
			entries = append(entries, fmt.Sprintf("%s at %s", exp.Position, exp.Company))
		}
		expLine = strings.Join(entries, "; ")
	}

	industry := input.TargetIndustry
	if industry == "" {
		industry = "General"
	}

	return fmt.Sprintf(suggestionsUserPromptTemplate,
		summary, skillLine, expLine, input.TargetRole, industry)
}

// buildCoverLetterPrompt renders the user prompt for a cover letter request.
func buildCoverLetterPrompt(input CoverLetterInput) string {
	name := input.ResumeData.PersonalInfo.FullName
	if name == "" {
		name = "the applicant"
	}

	currentRole := "Professional"
	if len(input.ResumeData.Experiences) > 0 {
		currentRole = input.ResumeData.Experiences[0].Position
	}

	skills := skillNames(input.ResumeData.Skills, 5)
	skillLine := "Various professional skills"
	if len(skills) > 0 {
		skillLine = strings.Join(skills, ", ")
	}

	return fmt.Sprintf(coverLetterUserPromptTemplate,
		name, currentRole, skillLine, input.ResumeData.PersonalInfo.Summary,
		input.TargetCompany, input.TargetPosition)
}

// skillNames returns the first limit skill names, or all of them when limit
// is zero.
func skillNames(skills []resume.Skill, limit int) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
		if limit > 0 && len(names) == limit {
			break
		}
	}
	return names
}

package ai

import (
	"strings"
	"testing"

	"cvision/internal/resume"
)

func TestFallbackSuggestions(t *testing.T) {
	tests := []struct {
		name        string
		input       SuggestionInput
		wantSummary string
	}{
		{
			name: "role and industry",
			input: SuggestionInput{
				TargetRole:     "Software Engineer",
				TargetIndustry: "fintech",
			},
			wantSummary: "Results-driven Software Engineer with expertise in fintech. Proven track record of delivering high-quality solutions and driving business outcomes.",
		},
		{
			name: "missing industry uses generic phrase",
			input: SuggestionInput{
				TargetRole: "Product Manager",
			},
			wantSummary: "Results-driven Product Manager with expertise in the industry. Proven track record of delivering high-quality solutions and driving business outcomes.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackSuggestions(tt.input)

			if got.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", got.Summary, tt.wantSummary)
			}
			if len(got.Skills) != 5 {
				t.Errorf("len(Skills) = %d, want 5", len(got.Skills))
			}
			if len(got.Achievements) != 3 {
				t.Errorf("len(Achievements) = %d, want 3", len(got.Achievements))
			}
			if !got.Fallback {
				t.Error("Fallback = false, want true")
			}
		})
	}
}

func TestFallbackSuggestionsDeterministic(t *testing.T) {
	input := SuggestionInput{TargetRole: "Data Analyst", TargetIndustry: "healthcare"}

	first := FallbackSuggestions(input)
	second := FallbackSuggestions(input)

	if first.Summary != second.Summary {
		t.Error("fallback suggestions are not deterministic")
	}
}

func TestFallbackCoverLetter(t *testing.T) {
	data := resume.DefaultResumeData()
	data.PersonalInfo.FullName = "Jordan Smith"
	data.Experiences = []resume.Experience{
		{Position: "Site Reliability Engineer", Company: "Prior Co"},
	}

	result := FallbackCoverLetter(CoverLetterInput{
		ResumeData:     data,
		TargetCompany:  "Acme",
		TargetPosition: "Platform Engineer",
	})

	if !result.Fallback {
		t.Error("Fallback = false, want true")
	}
	for _, want := range []string{"Jordan Smith", "Acme", "Platform Engineer", "Site Reliability Engineer"} {
		if !strings.Contains(result.Content, want) {
			t.Errorf("cover letter missing %q", want)
		}
	}
}

func TestFallbackCoverLetterEmptyResume(t *testing.T) {
	result := FallbackCoverLetter(CoverLetterInput{
		ResumeData:     resume.DefaultResumeData(),
		TargetCompany:  "Acme",
		TargetPosition: "Engineer",
	})

	if !strings.Contains(result.Content, "the applicant") {
		t.Error("expected generic applicant name for empty resume")
	}
	if !strings.Contains(result.Content, "professional") {
		t.Error("expected generic current role for empty resume")
	}
}

func TestBuildSuggestionsPromptFillsGaps(t *testing.T) {
	prompt := buildSuggestionsPrompt(SuggestionInput{
		ResumeData: resume.DefaultResumeData(),
		TargetRole: "Engineer",
	})

	for _, want := range []string{"None provided", "Current Skills: None", "Experience: None", "Target Industry: General"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildCoverLetterPromptLimitsSkills(t *testing.T) {
	data := resume.DefaultResumeData()
	for _, name := range []string{"Go", "Python", "SQL", "Kubernetes", "Terraform", "Rust"} {
		data.Skills = append(data.Skills, resume.Skill{Name: name})
	}

	prompt := buildCoverLetterPrompt(CoverLetterInput{
		ResumeData:     data,
		TargetCompany:  "Acme",
		TargetPosition: "Engineer",
	})

	if strings.Contains(prompt, "Rust") {
		t.Error("prompt should only include the first five skills")
	}
	if !strings.Contains(prompt, "Terraform") {
		t.Error("prompt missing fifth skill")
	}
}

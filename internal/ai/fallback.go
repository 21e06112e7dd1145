package ai

import "fmt"

// FallbackSuggestions builds the deterministic local suggestion set used when
// the remote model cannot be reached. The output depends only on the target
// role and industry.
func FallbackSuggestions(input SuggestionInput) SuggestionResult {
	industry := input.TargetIndustry
	if industry == "" {
		industry = "the industry"
	}

	return SuggestionResult{
		Summary: fmt.Sprintf(
			"Results-driven %s with expertise in %s. Proven track record of delivering high-quality solutions and driving business outcomes.",
			input.TargetRole, industry),
		Skills: []string{
			"Leadership",
			"Strategic Planning",
			"Problem Solving",
			"Communication",
			"Project Management",
		},
		Achievements: []string{
			"Increased team productivity by 25% through process improvements",
			"Led cross-functional initiatives resulting in $500K+ cost savings",
			"Delivered projects 20% ahead of schedule while maintaining quality standards",
		},
		Fallback: true,
	}
}

// FallbackCoverLetter builds a templated cover letter from the resume's own
// fields when the remote model cannot be reached.
func FallbackCoverLetter(input CoverLetterInput) CoverLetterResult {
	name := input.ResumeData.PersonalInfo.FullName
	if name == "" {
		name = "the applicant"
	}

	currentRole := "professional"
	if len(input.ResumeData.Experiences) > 0 && input.ResumeData.Experiences[0].Position != "" {
		currentRole = input.ResumeData.Experiences[0].Position
	}

	content := fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my strong interest in the %s position at %s. With my background as a %s, I am confident that my skills and experience make me a strong candidate for this role.

Throughout my career I have focused on delivering measurable results and building effective working relationships. My experience has prepared me to contribute to %s from day one, and I am eager to bring that same commitment to your team.

I would welcome the opportunity to discuss how my background aligns with your needs. Thank you for considering my application.

Sincerely,
%s`,
		input.TargetPosition, input.TargetCompany, currentRole,
		input.TargetCompany, name)

	return CoverLetterResult{
		Content:  content,
		Fallback: true,
	}
}

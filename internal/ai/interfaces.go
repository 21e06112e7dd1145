package ai

import (
	"context"

	"cvision/internal/resume"
)

// SuggestionInput carries the resume context for a suggestion request.
type SuggestionInput struct {
	ResumeData     resume.ResumeData `json:"resumeData"`
	TargetRole     string            `json:"targetRole"`
	TargetIndustry string            `json:"targetIndustry,omitempty"`
}

// SuggestionResult is the structured improvement advice for a resume.
// Fallback marks results produced locally when the remote model was
// unavailable.
type SuggestionResult struct {
	Summary      string   `json:"summary"`
	Skills       []string `json:"skills"`
	Achievements []string `json:"achievements"`
	Fallback     bool     `json:"fallback,omitempty"`
}

// CoverLetterInput carries the resume context for a cover letter request.
type CoverLetterInput struct {
	ResumeData     resume.ResumeData `json:"resumeData"`
	TargetCompany  string            `json:"targetCompany"`
	TargetPosition string            `json:"targetPosition"`
}

// CoverLetterResult is a generated cover letter.
type CoverLetterResult struct {
	Content  string `json:"content"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Provider interface for different AI implementations
// All methods return token usage information - callers can ignore it if not needed
type Provider interface {
	GenerateSuggestions(ctx context.Context, input SuggestionInput) (SuggestionResult, *TokenUsage, error)
	GenerateCoverLetter(ctx context.Context, input CoverLetterInput) (CoverLetterResult, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	GetCircuitBreakerStats() map[string]any
	Close() error
}

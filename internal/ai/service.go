package ai

import (
	"context"
	"fmt"

	"cvision/internal/config"
	"cvision/internal/errors"
)

// Service handles AI suggestion and cover letter generation. Every failure
// path, including a missing API key, degrades to the deterministic local
// fallback rather than an error; callers can tell from the Fallback flag.
type Service struct {
	Provider Provider // nil when running fallback-only
	config   *config.AIConfig
	logger   *errors.Logger
}

// NewService creates a new AI service instance. Without an API key the
// service runs in fallback-only mode.
func NewService(cfg *config.AIConfig, logger *errors.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		logger.Warn("No AI API key configured, running in fallback-only mode",
			"provider", cfg.Provider)
		return &Service{config: cfg, logger: logger}, nil
	}

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"temperature", cfg.Temperature,
		"timeout", cfg.Timeout,
		"max_retries", cfg.MaxRetries)

	var provider Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Suggest generates improvement suggestions, substituting the local fallback
// when the provider is absent or fails.
func (s *Service) Suggest(ctx context.Context, input SuggestionInput) (SuggestionResult, error) {
	if s.Provider == nil {
		return FallbackSuggestions(input), nil
	}

	result, usage, err := s.Provider.GenerateSuggestions(ctx, input)
	if err != nil {
		s.logger.LogError(err, "Suggestion generation failed, serving fallback",
			"target_role", input.TargetRole)
		return FallbackSuggestions(input), nil
	}

	if usage != nil {
		s.logger.Debug("Suggestions generated",
			"input_tokens", usage.InputTokens,
			"output_tokens", usage.OutputTokens)
	}
	return result, nil
}

// CoverLetter generates a cover letter, substituting the local fallback when
// the provider is absent or fails.
func (s *Service) CoverLetter(ctx context.Context, input CoverLetterInput) (CoverLetterResult, error) {
	if s.Provider == nil {
		return FallbackCoverLetter(input), nil
	}

	result, usage, err := s.Provider.GenerateCoverLetter(ctx, input)
	if err != nil {
		s.logger.LogError(err, "Cover letter generation failed, serving fallback",
			"target_company", input.TargetCompany)
		return FallbackCoverLetter(input), nil
	}

	if usage != nil {
		s.logger.Debug("Cover letter generated",
			"input_tokens", usage.InputTokens,
			"output_tokens", usage.OutputTokens)
	}
	return result, nil
}

// ModelInfo reports the configured model's availability for health checks.
func (s *Service) ModelInfo(ctx context.Context) *ModelInfo {
	if s.Provider == nil {
		return &ModelInfo{
			Name:      s.config.Model,
			Available: false,
			Error:     "no API key configured",
		}
	}
	return s.Provider.GetModelInfo(ctx)
}

// CircuitBreakerStats exposes breaker state for the stats endpoint.
func (s *Service) CircuitBreakerStats() map[string]any {
	if s.Provider == nil {
		return map[string]any{"enabled": false, "fallback_only": true}
	}
	return s.Provider.GetCircuitBreakerStats()
}

// Close releases provider resources.
func (s *Service) Close() error {
	if s.Provider == nil {
		return nil
	}
	return s.Provider.Close()
}

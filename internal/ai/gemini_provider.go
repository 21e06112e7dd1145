package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"cvision/internal/config"
	cvisionErrors "cvision/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	config         *config.AIConfig
	circuitBreaker *CircuitBreaker
	logger         *cvisionErrors.Logger
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.AIConfig, logger *cvisionErrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, cvisionErrors.NewAIError(cvisionErrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client:         client,
		config:         cfg,
		circuitBreaker: NewCircuitBreaker("generate", cfg.CircuitBreaker, logger),
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model, err := g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)
		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// executeWithRetry executes a generate call with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// generate runs one traced, breaker-protected generate-content call and
// returns the raw response text.
func (g *GeminiProvider) generate(ctx context.Context, operationName, userPrompt, systemPrompt string, genaiConfig *genai.GenerateContentConfig, spanAttributes ...attribute.KeyValue) (string, *TokenUsage, error) {
	tracer := otel.Tracer("cvision.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	if systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(callCtx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(callCtx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return "", nil, cvisionErrors.NewAIError(cvisionErrors.ErrCodeAIServiceFailed,
			"Failed to generate content for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return result.Text(), tokenUsage, nil
}

// GenerateSuggestions implements Provider for resume improvement suggestions
func (g *GeminiProvider) GenerateSuggestions(ctx context.Context, input SuggestionInput) (SuggestionResult, *TokenUsage, error) {
	userPrompt := buildSuggestionsPrompt(input)
	genaiConfig := g.buildSuggestionsSchema()

	text, tokenUsage, err := g.generate(ctx, "generate_suggestions",
		userPrompt, suggestionsSystemPrompt, genaiConfig,
		attribute.String("input.target_role", input.TargetRole),
		attribute.Int("input.skill_count", len(input.ResumeData.Skills)),
	)
	if err != nil {
		return SuggestionResult{}, nil, err
	}

	var result SuggestionResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return SuggestionResult{}, nil, cvisionErrors.NewAIError("AI_RESPONSE_PARSE_FAILED",
			"Failed to parse AI response for generate_suggestions", err)
	}

	return result, tokenUsage, nil
}

// GenerateCoverLetter implements Provider for cover letter generation
func (g *GeminiProvider) GenerateCoverLetter(ctx context.Context, input CoverLetterInput) (CoverLetterResult, *TokenUsage, error) {
	userPrompt := buildCoverLetterPrompt(input)

	genaiConfig := &genai.GenerateContentConfig{}
	if g.config.Temperature > 0 {
		temperature := g.config.Temperature
		genaiConfig.Temperature = &temperature
	}

	text, tokenUsage, err := g.generate(ctx, "generate_cover_letter",
		userPrompt, coverLetterSystemPrompt, genaiConfig,
		attribute.String("input.target_company", input.TargetCompany),
		attribute.String("input.target_position", input.TargetPosition),
	)
	if err != nil {
		return CoverLetterResult{}, nil, err
	}

	return CoverLetterResult{Content: text}, tokenUsage, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	return map[string]any{
		"ai_operations":   g.circuitBreaker.GetStats(),
		"overall_healthy": g.circuitBreaker.IsHealthy(),
	}
}

// Close implements Provider
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// buildSuggestionsSchema creates the response schema for suggestion requests
func (g *GeminiProvider) buildSuggestionsSchema() *genai.GenerateContentConfig {
	genaiConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary": {Type: genai.TypeString},
				"skills": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"achievements": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"summary", "skills", "achievements"},
		},
	}

	if g.config.Temperature > 0 {
		temperature := g.config.Temperature
		genaiConfig.Temperature = &temperature
	}

	return genaiConfig
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from a Gemini response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}

package server

import (
	"time"

	"cvision/internal/ai"
	"cvision/internal/config"
	cvisionErrors "cvision/internal/errors"
	"cvision/internal/resume"
	"cvision/internal/store"
)

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	ResumeData resume.ResumeData `json:"resumeData"`
}

// MatchRequest represents the request body for the match endpoint
type MatchRequest struct {
	ResumeData     resume.ResumeData `json:"resumeData"`
	JobDescription string            `json:"jobDescription"`
}

// SuggestRequest represents the request body for the suggest endpoint
type SuggestRequest struct {
	ResumeData     resume.ResumeData `json:"resumeData"`
	TargetRole     string            `json:"targetRole"`
	TargetIndustry string            `json:"targetIndustry,omitempty"`
}

// CoverLetterRequest represents the request body for the cover-letter endpoint
type CoverLetterRequest struct {
	ResumeData     resume.ResumeData `json:"resumeData"`
	TargetCompany  string            `json:"targetCompany"`
	TargetPosition string            `json:"targetPosition"`
	Save           bool              `json:"save,omitempty"`
}

// KeywordsResponse is returned by the keywords endpoint
type KeywordsResponse struct {
	Industry string   `json:"industry"`
	Keywords []string `json:"keywords"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *LimiterManager

	// Collaborators
	AIService *ai.Service
	Store     *store.Store

	// Logger
	Logger *cvisionErrors.Logger
}

// NewServer creates a new Server instance from the application configuration
func NewServer(appCfg *config.Config, version string, aiService *ai.Service, blobStore *store.Store, logger *cvisionErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range appCfg.Server.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *LimiterManager
	if appCfg.Server.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			appCfg.Server.RateLimit.RequestsPerMin,
			appCfg.Server.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           appCfg.Server.Host,
		Port:           appCfg.Server.Port,
		Version:        version,
		AppConfig:      appCfg,
		TLSConfig:      appCfg.Server.TLS,
		APIKeys:        apiKeyMap,
		ReadTimeout:    appCfg.Server.ReadTimeout,
		WriteTimeout:   appCfg.Server.WriteTimeout,
		IdleTimeout:    appCfg.Server.IdleTimeout,
		MaxRequestSize: appCfg.App.MaxFileSize,
		RateLimit:      &appCfg.Server.RateLimit,
		RateLimiter:    rateLimiter,
		AIService:      aiService,
		Store:          blobStore,
		Logger:         logger,
	}
}

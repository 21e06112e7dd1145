package server

import (
	"fmt"
	"net/http"
	"strings"

	"cvision/internal/ai"
	"cvision/internal/ats"
	"cvision/internal/match"
	"cvision/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the ATS scoring engine with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("cvision.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.experience_count", len(req.ResumeData.Experiences)),
			attribute.Int("request.skill_count", len(req.ResumeData.Skills)),
			attribute.String("operation", "score"),
		)

		result := ats.Score(req.ResumeData)

		metrics := om.GetMetrics()
		metrics.RecordScore(ctx, result.Overall, "http")

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.overall", result.Overall),
			attribute.Int("score.formatting", result.Formatting),
			attribute.Int("score.keywords", result.Keywords),
			attribute.Int("score.readability", result.Readability),
		)

		writeJSONResponse(w, result)
	}
}

// createMatchHandler wraps the job match analyzer with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("cvision.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "match"),
		)

		result := match.Analyze(req.ResumeData, req.JobDescription)

		metrics := om.GetMetrics()
		metrics.RecordMatch(ctx, result.Score, "http")

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("match.score", result.Score),
			attribute.Int("match.matched_count", len(result.MatchedKeywords)),
			attribute.Int("match.missing_count", len(result.MissingKeywords)),
		)

		writeJSONResponse(w, result)
	}
}

// createSuggestHandler wraps the AI suggestion service with observability
func (s *Server) createSuggestHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("cvision.api")
		ctx, span := tracer.Start(ctx, "api.suggest")
		defer span.End()

		var req SuggestRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.TargetRole) == "" {
			err := fmt.Errorf("missing target role")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing target role", "targetRole field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.target_role", req.TargetRole),
			attribute.String("operation", "suggest"),
		)

		result, err := s.AIService.Suggest(ctx, ai.SuggestionInput{
			ResumeData:     req.ResumeData,
			TargetRole:     req.TargetRole,
			TargetIndustry: req.TargetIndustry,
		})
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			writeErrorResponse(w, "Failed to generate suggestions", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		metrics.RecordSuggestion(ctx, result.Fallback, "http")

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Bool("fallback", result.Fallback),
		)

		writeJSONResponse(w, result)
	}
}

// createCoverLetterHandler wraps cover letter generation with observability.
// When save is requested, the generated letter is persisted to the store.
func (s *Server) createCoverLetterHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("cvision.api")
		ctx, span := tracer.Start(ctx, "api.cover_letter")
		defer span.End()

		var req CoverLetterRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.TargetCompany) == "" {
			err := fmt.Errorf("missing target company")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing target company", "targetCompany field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.TargetPosition) == "" {
			err := fmt.Errorf("missing target position")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing target position", "targetPosition field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.target_company", req.TargetCompany),
			attribute.String("request.target_position", req.TargetPosition),
			attribute.String("operation", "cover_letter"),
		)

		result, err := s.AIService.CoverLetter(ctx, ai.CoverLetterInput{
			ResumeData:     req.ResumeData,
			TargetCompany:  req.TargetCompany,
			TargetPosition: req.TargetPosition,
		})
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			writeErrorResponse(w, "Failed to generate cover letter", err.Error(), http.StatusInternalServerError)
			return
		}

		if req.Save {
			name := fmt.Sprintf("%s - %s", req.TargetCompany, req.TargetPosition)
			if _, err := s.Store.SaveCoverLetter(name, req.TargetCompany, req.TargetPosition, result.Content); err != nil {
				s.Logger.LogError(err, "Failed to save generated cover letter",
					"target_company", req.TargetCompany)
			}
		}

		metrics := om.GetMetrics()
		metrics.RecordCoverLetter(ctx, result.Fallback, "http")

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Bool("fallback", result.Fallback),
		)

		writeJSONResponse(w, result)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(), r.URL.Path)
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	cvisionErrors "cvision/internal/errors"

	"golang.org/x/time/rate"
)

// LimiterManager manages rate limiters for different clients
type LimiterManager struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	logger   *cvisionErrors.Logger

	// Cleanup tracking
	lastSeen map[string]time.Time
	done     chan struct{}
}

// NewRateLimiter creates a new rate limiter manager
func NewRateLimiter(requestsPerMin, burstCapacity int, logger *cvisionErrors.Logger) *LimiterManager {
	manager := &LimiterManager{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burstCapacity,
		logger:   logger,
		done:     make(chan struct{}),
	}

	// Start cleanup goroutine to remove stale limiters
	go manager.cleanupRoutine()

	return manager
}

// GetLimiter returns the rate limiter for the given key, creating one if needed
func (lm *LimiterManager) GetLimiter(key string) *rate.Limiter {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	limiter, exists := lm.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(lm.rate, lm.burst)
		lm.limiters[key] = limiter
	}
	lm.lastSeen[key] = time.Now()

	return limiter
}

// cleanupRoutine removes limiters that haven't been used recently
func (lm *LimiterManager) cleanupRoutine() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			lm.cleanup()
		case <-lm.done:
			return
		}
	}
}

// cleanup removes limiters not seen in the last 30 minutes
func (lm *LimiterManager) cleanup() {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	cutoff := time.Now().Add(-30 * time.Minute)
	removed := 0
	for key, seen := range lm.lastSeen {
		if seen.Before(cutoff) {
			delete(lm.limiters, key)
			delete(lm.lastSeen, key)
			removed++
		}
	}

	if removed > 0 {
		lm.logger.Debug("Cleaned up stale rate limiters",
			"removed", removed,
			"remaining", len(lm.limiters))
	}
}

// GetStats returns statistics about active rate limiters
func (lm *LimiterManager) GetStats() map[string]any {
	lm.mu.RLock()
	defer lm.mu.RUnlock()

	return map[string]any{
		"enabled":         true,
		"active_limiters": len(lm.limiters),
		"rate_per_second": float64(lm.rate),
		"burst_capacity":  lm.burst,
	}
}

// Close stops the cleanup goroutine
func (lm *LimiterManager) Close() {
	close(lm.done)
}

// rateLimitMiddleware enforces per-client rate limits
func (s *Server) rateLimitMiddleware() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			// Skip if rate limiting is disabled
			if s.RateLimiter == nil || s.RateLimit == nil || !s.RateLimit.Enabled {
				next(w, r)
				return
			}

			key := s.getRateLimitKey(r)
			if key == "" {
				next(w, r)
				return
			}

			limiter := s.RateLimiter.GetLimiter(key)
			if !limiter.Allow() {
				s.Logger.Info("Rate limit exceeded",
					"key", key,
					"endpoint", r.URL.Path,
					"client_ip", getClientIP(r))
				w.Header().Set("Retry-After", "60")
				writeErrorResponse(w, "Rate limit exceeded", "Too many requests, please try again later", http.StatusTooManyRequests)
				return
			}

			next(w, r)
		}
	}
}

// getRateLimitKey determines the rate limiting key for a request.
// API key identity takes precedence over client IP when both are enabled.
func (s *Server) getRateLimitKey(r *http.Request) string {
	if s.RateLimit.ByAPIKey {
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			if after, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
				apiKey = after
			}
		}
		if apiKey != "" {
			return "api:" + apiKey
		}
	}

	if s.RateLimit.ByIP {
		return "ip:" + getClientIP(r)
	}

	return ""
}

// getClientIP extracts the client IP from the request, honoring proxy headers
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := parseFirstIP(xff); ip != "" {
			return ip
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// parseFirstIP returns the first entry of a comma-separated IP list
func parseFirstIP(list string) string {
	for part := range strings.SplitSeq(list, ",") {
		if ip := strings.TrimSpace(part); ip != "" {
			return ip
		}
	}
	return ""
}

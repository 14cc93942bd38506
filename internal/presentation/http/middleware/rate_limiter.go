package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
	"golang.org/x/time/rate"
)

// RateLimiter applies a single global limit. The API serves one local
// operator, so there is no per-client bookkeeping; the limiter only
// protects the SQLite writer from a runaway UI loop.
type RateLimiter struct {
	limiter *rate.Limiter
}

// RateLimiterConfig holds configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// NewRateLimiter creates a new global rate limiter
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = 20
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Middleware returns the gin middleware applying the limit
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter.Allow() {
			response.ErrorWithCode(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

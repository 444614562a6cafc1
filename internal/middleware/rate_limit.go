package middleware

import (
	"sync"

	"go-paie/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter hands out one token bucket per key (client IP, user id).
type KeyedRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewKeyedRateLimiter(limit rate.Limit, burst int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (k *KeyedRateLimiter) Allow(key string) bool {
	k.mu.Lock()
	limiter, ok := k.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(k.limit, k.burst)
		k.limiters[key] = limiter
	}
	k.mu.Unlock()

	return limiter.Allow()
}

// rateLimitBy skips requests whose key is empty.
func rateLimitBy(limiter *KeyedRateLimiter, key func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if k := key(c); k != "" && !limiter.Allow(k) {
			response.AbortWithError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

func RateLimitByIP(limit rate.Limit, burst int) gin.HandlerFunc {
	return rateLimitBy(NewKeyedRateLimiter(limit, burst), func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByUser keys on the authenticated user; anonymous requests pass.
func RateLimitByUser(limit rate.Limit, burst int) gin.HandlerFunc {
	return rateLimitBy(NewKeyedRateLimiter(limit, burst), func(c *gin.Context) string {
		return c.GetString("user_id")
	})
}

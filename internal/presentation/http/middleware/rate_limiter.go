package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/config"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
	"golang.org/x/time/rate"
)

// IPRateLimiter throttles requests per client IP. It guards the public
// contact form and the login endpoint against abuse.
type IPRateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	entryTTL time.Duration
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a limiter allowing cfg.Requests per
// cfg.Duration seconds from each IP.
func NewIPRateLimiter(cfg *config.RateLimitConfig) *IPRateLimiter {
	requests := cfg.Requests
	if requests <= 0 {
		requests = 30
	}
	duration := cfg.Duration
	if duration <= 0 {
		duration = 60
	}

	rl := &IPRateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(float64(requests) / float64(duration)),
		burst:    requests,
		entryTTL: 10 * time.Minute,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if entry, ok := rl.limiters[ip]; ok {
		entry.lastSeen = time.Now()
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:  rate.NewLimiter(rl.rate, rl.burst),
		lastSeen: time.Now(),
	}
	rl.limiters[ip] = entry
	return entry.limiter
}

func (rl *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-rl.entryTTL)
		rl.mu.Lock()
		for ip, entry := range rl.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware rejects over-limit requests with 429
func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			response.ErrorWithCode(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

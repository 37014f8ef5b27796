package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"dayflow/pkg/response"
)

// clientLimiters tracks one token bucket per client IP. Entries are never
// evicted; the expected client population is tiny for a personal app.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (cl *clientLimiters) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	limiter, ok := cl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters[key] = limiter
	}
	return limiter
}

// RateLimit throttles requests per client IP using a token bucket.
// A zero configured rate returns a pass-through handler.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.ratePerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	clients := &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(m.ratePerMin) / 60.0),
		burst:    m.rateBurst,
	}

	return func(c *gin.Context) {
		if !clients.get(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

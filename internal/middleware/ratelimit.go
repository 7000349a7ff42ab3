package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	pkgErrors "gantt-task-board/pkg/errors"
	"gantt-task-board/pkg/response"
)

// clientLimiters keeps one token bucket per client IP. Buckets refill
// at perMin tokens per minute and allow a small burst on top.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newClientLimiters(perMin int) *clientLimiters {
	if perMin <= 0 {
		perMin = 30
	}
	return &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMin)),
		burst:    perMin,
	}
}

func (cl *clientLimiters) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	lim, ok := cl.limiters[key]
	if !ok {
		lim = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters[key] = lim
	}
	return lim
}

// RateLimit throttles a route per client IP. Intended for the routes
// that touch the filesystem (upload, export).
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.clients.get(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s on %s", c.ClientIP(), c.FullPath())
			response.Error(c, pkgErrors.NewHTTPError(429, "too many requests"), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

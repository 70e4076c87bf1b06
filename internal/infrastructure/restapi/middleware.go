package restapi

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"dao_networks/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// ipRateLimiter hands out one token bucket per client IP.
// Buckets idle for longer than the TTL expire, so the store only holds recently seen clients.
type ipRateLimiter struct {
	mu    sync.Mutex
	store *cache.Cache
	rps   rate.Limit
	burst int
}

func newIPRateLimiter(rps float64, burst int, idleTTL time.Duration) *ipRateLimiter {
	return &ipRateLimiter{
		store: cache.New(idleTTL, idleTTL),
		rps:   rate.Limit(rps),
		burst: burst,
	}
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lim *rate.Limiter
	if v, ok := l.store.Get(ip); ok {
		lim = v.(*rate.Limiter)
	} else {
		lim = rate.NewLimiter(l.rps, l.burst)
	}
	// Re-set on every hit to slide the expiry.
	l.store.Set(ip, lim, cache.DefaultExpiration)
	return lim
}

// RateLimitMiddleware rejects requests over the per-IP budget with 429.
// The client IP comes from gin, so forwarded headers only count when the peer is a trusted proxy.
func RateLimitMiddleware(rps float64, burst int, idleTTL time.Duration) gin.HandlerFunc {
	limiter := newIPRateLimiter(rps, burst, idleTTL)
	return func(c *gin.Context) {
		if !limiter.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, APIErrorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// MetricsMiddleware records request counts and latency per route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

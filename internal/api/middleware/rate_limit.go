package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/response"
)

// sweepInterval is how often idle clients are dropped from the limiter.
const sweepInterval = time.Minute

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	limit     rate.Limit
	burst     int
	rejected  prometheus.Counter
	now       func() time.Time
	lastSweep time.Time
}

// NewRateLimiter allows perSecond requests per client with the given burst.
// rejected may be nil.
func NewRateLimiter(perSecond float64, burst int, rejected prometheus.Counter) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		rejected: rejected,
		now:      time.Now,
	}
}

func (l *RateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= sweepInterval {
		l.sweep(now)
	}

	limiter, exists := l.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}

	return limiter.AllowN(now, 1)
}

// sweep drops clients whose bucket has refilled completely. A fresh bucket
// for such a client behaves the same, so no limit is lost.
func (l *RateLimiter) sweep(now time.Time) {
	for ip, limiter := range l.limiters {
		if limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

func (l *RateLimiter) Limit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.allow(ctx.ClientIP()) {
			if l.rejected != nil {
				l.rejected.Inc()
			}
			response.RenderErr(ctx, response.ErrTooManyRequests())
			return
		}

		ctx.Next()
	}
}

package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucket holds the remaining requests of one client for the current window
type bucket struct {
	tokens   int
	refillAt time.Time
}

// RateLimiter hands out a fixed number of requests per client per interval
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	capacity int
	interval time.Duration
	now      func() time.Time
}

// NewRateLimiter creates a limiter allowing capacity requests per interval
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		capacity: capacity,
		interval: interval,
		now:      time.Now,
	}
}

// Sweep drops idle buckets every interval until ctx is done
func (rl *RateLimiter) Sweep(ctx context.Context) {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for client, b := range rl.buckets {
		if now.After(b.refillAt) {
			delete(rl.buckets, client)
		}
	}
}

// Allow consumes a request for client and reports what is left
func (rl *RateLimiter) Allow(client string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[client]
	if !ok || now.After(b.refillAt) {
		b = &bucket{tokens: rl.capacity, refillAt: now.Add(rl.interval)}
		rl.buckets[client] = b
	}

	if b.tokens == 0 {
		return false, 0
	}
	b.tokens--
	return true, b.tokens
}

// retryAfter returns the whole seconds until client gets new requests
func (rl *RateLimiter) retryAfter(client string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[client]
	if !ok {
		return 0
	}
	secs := int(b.refillAt.Sub(rl.now()).Seconds() + 0.999)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// RateLimitMiddleware limits requests per client IP. A nil limiter lets
// everything through.
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		client := c.ClientIP()
		allowed, remaining := limiter.Allow(client)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.capacity))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(limiter.retryAfter(client)))
			c.AbortWithStatusJSON(429, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}

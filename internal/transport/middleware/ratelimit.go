package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/worktrack-backend/internal/config"
)

// RateLimiter applies a per-client token bucket to incoming requests.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	clients sync.Map // map[string]*client
	stop    chan struct{}
	once    sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter creates a rate limiter that forgets clients idle for longer
// than cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig, cleanupInterval time.Duration) *RateLimiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limit:   rate.Limit(cfg.RPS),
		burst:   burst,
		idleTTL: cleanupInterval,
		stop:    make(chan struct{}),
	}
	if cfg.RPS > 0 {
		go rl.cleanup(cleanupInterval)
	}
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware enforcing the configured rate per client IP.
// A non-positive rate disables limiting.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		if rl.limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.clientFor(clientIP(r)).Allow() {
				retryAfter := int(math.Ceil(1 / float64(rl.limit)))
				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) clientFor(key string) *rate.Limiter {
	now := time.Now().UnixNano()
	if v, ok := rl.clients.Load(key); ok {
		c := v.(*client)
		c.lastSeen.Store(now)
		return c.limiter
	}
	c := &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
	c.lastSeen.Store(now)
	v, _ := rl.clients.LoadOrStore(key, c)
	return v.(*client).limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle(time.Now())
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	cutoff := now.Add(-rl.idleTTL).UnixNano()
	rl.clients.Range(func(key, value any) bool {
		if value.(*client).lastSeen.Load() < cutoff {
			rl.clients.Delete(key)
		}
		return true
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package ratelimit

import (
	"sync"
	"time"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// Limiter keeps one token bucket per client key (the client IP for auth endpoints).
type Limiter struct {
	visitors    map[string]*visitor
	mu          sync.Mutex
	rps         rate.Limit
	burst       int
	cleanupFreq time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter starts the stale-visitor cleanup loop; call Stop to end it.
// Non-positive rps falls back to 1 and burst below 1 falls back to 1.
func NewLimiter(rps float64, burst int, cleanupFreq time.Duration) *Limiter {
	if rps <= 0 {
		rps = 1
	}
	if burst < 1 {
		burst = 1
	}
	l := &Limiter{
		visitors:    make(map[string]*visitor),
		rps:         rate.Limit(rps),
		burst:       burst,
		cleanupFreq: cleanupFreq,
		stop:        make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanupLoop() {
	if l.cleanupFreq <= 0 {
		return
	}
	ticker := time.NewTicker(l.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(time.Now().Add(-3 * l.cleanupFreq))
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) cleanup(staleBefore time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, v := range l.visitors {
		if v.lastSeen.Before(staleBefore) {
			delete(l.visitors, key)
		}
	}
}

// Middleware rejects clients that exhausted their bucket with 429.
func Middleware(l *Limiter, m *metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.Allow(c.IP()) {
			m.RateLimitHit()
			return apperror.ErrTooManyRequests
		}
		return c.Next()
	}
}

package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// ipLimiter hands out one token-bucket limiter per client IP. Buckets are
// kept for the life of the process; the back office has a small, stable set
// of clients.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// InitRateLimiter throttles each client IP. Per-keystroke derive calls from
// the editing screens are bursty, so the burst is generous.
func InitRateLimiter(app *fiber.App) {
	limiters := &ipLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(50),
		burst:    100,
	}

	app.Use(func(c *fiber.Ctx) error {
		if !limiters.get(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests",
			})
		}
		return c.Next()
	})
}

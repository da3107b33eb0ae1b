package middleware

import (
	"sync"
	"time"

	"finease-server/internal/errors"
	"finease-server/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Report endpoints rescan the owner's whole collection on every call, so a
// single chatty dashboard can generate real database load. Limits are per
// client IP with a token bucket; the defaults match the config package's
// RATE_LIMIT_* fallbacks.
const clientIdleEviction = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients   = make(map[string]*client)
	clientsMu sync.RWMutex

	requestsPerSecond = 5
	burstSize         = 10
)

// RateLimiter creates a per-IP rate limiting middleware with default limits
func RateLimiter() echo.MiddlewareFunc {
	go evictIdleClients()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiterFor(clientIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// RateLimiterWithConfig creates a rate limiter with the configured refill
// rate and burst size
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	requestsPerSecond = rps
	burstSize = burst

	return RateLimiter()
}

func limiterFor(ip string) *rate.Limiter {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	cl, exists := clients[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)
		clients[ip] = &client{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	cl.lastSeen = time.Now()
	return cl.limiter
}

// clientIP prefers proxy-forwarded addresses so everyone behind the load
// balancer does not share one bucket
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}

func evictIdleClients() {
	for {
		time.Sleep(time.Minute)

		clientsMu.Lock()
		for ip, cl := range clients {
			if time.Since(cl.lastSeen) > clientIdleEviction {
				delete(clients, ip)
			}
		}
		clientsMu.Unlock()
	}
}

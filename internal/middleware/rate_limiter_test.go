package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func resetRateLimiter(rps, burst int) {
	clientsMu.Lock()
	clients = make(map[string]*client)
	requestsPerSecond = rps
	burstSize = burst
	clientsMu.Unlock()
}

func rateLimitedHandler(middleware echo.MiddlewareFunc) echo.HandlerFunc {
	return middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func sendFrom(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/overview", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, handler(c)
}

func TestRateLimiter_BurstThenRejection(t *testing.T) {
	resetRateLimiter(5, 10)

	e := echo.New()
	handler := rateLimitedHandler(RateLimiter())

	okCount := 0
	limited := false
	for i := 0; i < 25; i++ {
		rec, err := sendFrom(e, handler, "10.0.0.1:4000")
		// SendError writes the response and returns nil
		assert.NoError(t, err)
		switch rec.Code {
		case http.StatusOK:
			okCount++
		case http.StatusTooManyRequests:
			limited = true
			assert.Contains(t, rec.Body.String(), "SYSTEM_004")
		}
	}

	assert.GreaterOrEqual(t, okCount, burstSize, "the full burst should pass")
	assert.True(t, limited, "requests past the burst should be rejected")
}

func TestRateLimiterWithConfig_UsesConfiguredBurst(t *testing.T) {
	resetRateLimiter(5, 10)

	e := echo.New()
	handler := rateLimitedHandler(RateLimiterWithConfig(2, 4))

	for i := 0; i < 4; i++ {
		rec, err := sendFrom(e, handler, "10.0.0.2:4000")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i)
	}

	rec, err := sendFrom(e, handler, "10.0.0.2:4000")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_BucketsAreIndependentPerIP(t *testing.T) {
	resetRateLimiter(5, 10)

	e := echo.New()
	handler := rateLimitedHandler(RateLimiter())

	for i := 0; i < 3; i++ {
		addr := fmt.Sprintf("10.0.1.%d:4000", i)
		for j := 0; j < 5; j++ {
			rec, err := sendFrom(e, handler, addr)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code, "request %d from %s", j, addr)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For from the load balancer",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "X-Real-IP when no forwarded chain",
			headers:    map[string]string{"X-Real-IP": "203.0.113.10"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.10",
		},
		{
			name: "forwarded chain wins over X-Real-IP",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.9",
				"X-Real-IP":       "203.0.113.10",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "direct connection",
			headers:    map[string]string{},
			remoteAddr: "203.0.113.11:12345",
			expected:   "203.0.113.11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.expected, clientIP(c))
		})
	}
}

func TestIdleClientEviction(t *testing.T) {
	clientsMu.Lock()
	clients = map[string]*client{
		"idle":   {lastSeen: time.Now().Add(-2 * clientIdleEviction)},
		"active": {lastSeen: time.Now()},
	}
	for ip, cl := range clients {
		if time.Since(cl.lastSeen) > clientIdleEviction {
			delete(clients, ip)
		}
	}
	_, idleExists := clients["idle"]
	_, activeExists := clients["active"]
	clientsMu.Unlock()

	assert.False(t, idleExists, "idle client should be evicted")
	assert.True(t, activeExists, "active client should survive")
}

func TestRateLimiter_ConcurrentRequestsAreAllAccounted(t *testing.T) {
	resetRateLimiter(5, 10)

	e := echo.New()
	handler := rateLimitedHandler(RateLimiter())

	var wg sync.WaitGroup
	var countMu sync.Mutex
	okCount, limitedCount := 0, 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rec, err := sendFrom(e, handler, "10.0.2.1:4000")

			countMu.Lock()
			defer countMu.Unlock()
			if err != nil {
				return
			}
			switch rec.Code {
			case http.StatusOK:
				okCount++
			case http.StatusTooManyRequests:
				limitedCount++
			}
		}()
	}
	wg.Wait()

	assert.Greater(t, okCount, 0, "some requests should pass")
	assert.Greater(t, limitedCount, 0, "some requests should be limited")
	assert.Equal(t, 20, okCount+limitedCount)
}

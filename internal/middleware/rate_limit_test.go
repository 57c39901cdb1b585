package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitTestRouter(rate int, window time.Duration) *gin.Engine {
	router := gin.New()
	limiter := NewRateLimiter(rate, window)
	router.Use(limiter.RateLimit())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestRateLimit(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		router := rateLimitTestRouter(3, time.Minute)

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rejects requests over the limit", func(t *testing.T) {
		router := rateLimitTestRouter(2, time.Minute)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	})

	t.Run("sets rate limit headers", func(t *testing.T) {
		router := rateLimitTestRouter(5, time.Minute)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("window expiry restores the budget", func(t *testing.T) {
		router := rateLimitTestRouter(1, 30*time.Millisecond)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		time.Sleep(40 * time.Millisecond)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCheckRateLimit(t *testing.T) {
	rl := NewShardedRateLimiter(2, time.Minute, 4)

	allowed, remaining := rl.checkRateLimit("10.0.0.1")
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)

	allowed, remaining = rl.checkRateLimit("10.0.0.1")
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _ = rl.checkRateLimit("10.0.0.1")
	assert.False(t, allowed)

	// Other identifiers keep their own budget.
	allowed, _ = rl.checkRateLimit("10.0.0.2")
	assert.True(t, allowed)
}

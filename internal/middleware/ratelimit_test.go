package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/notes-backend/internal/config"
)

func hitLimited(t *testing.T, e *echo.Echo) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.RateLimitConfig{Enabled: true, Limit: 3, Window: time.Minute, Prefix: "rl"}
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewRateLimiter(cfg, rdb))

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hitLimited(t, e))
	}
	assert.Equal(t, http.StatusTooManyRequests, hitLimited(t, e))

	// a fresh window clears the counter
	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, hitLimited(t, e))
}

func TestRateLimiterDisabledWithoutRedis(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Limit: 1, Window: time.Minute, Prefix: "rl"}
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewRateLimiter(cfg, nil))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hitLimited(t, e))
	}
}

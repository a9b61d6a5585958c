package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webhook-dispatcher/internal/adapter/http/middleware"
	redisStore "webhook-dispatcher/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store middleware.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}

	// Stand-in for JWTAuth: the team comes from a test header.
	r.Use(func(c *gin.Context) {
		if raw := c.GetHeader("X-Test-Team"); raw != "" {
			c.Set(middleware.CtxTeamID, uuid.MustParse(raw))
		}
		c.Next()
	})
	r.GET("/test", middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func doRequest(router *gin.Engine, teamID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	if teamID != "" {
		req.Header.Set("X-Test-Team", teamID)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		w := doRequest(router, "")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		doRequest(router, "")
	}

	w := doRequest(router, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_PerTeamCounters(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))
	teamA, teamB := uuid.NewString(), uuid.NewString()

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, doRequest(router, teamA).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, teamA).Code)
	assert.Equal(t, 200, doRequest(router, teamB).Code, "team B has its own counter")
}

type downLimiter struct{}

func (downLimiter) Allow(context.Context, string, int64, time.Duration) (*redisStore.RateLimitResult, error) {
	return nil, errors.New("connection refused")
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	router := setupRateLimitRouter(downLimiter{})

	for i := 0; i < 5; i++ {
		assert.Equal(t, 200, doRequest(router, "").Code)
	}
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(120), rules["management"].Limit)
	assert.Equal(t, int64(10), rules["test_event"].Limit)
	assert.Equal(t, int64(30), rules["retry"].Limit)
	assert.Equal(t, int64(1000), rules["emit"].Limit)
}

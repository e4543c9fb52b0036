package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/municipal_approval_app/internal/middleware"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedRouter(t *testing.T, client *redis.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l, err := middleware.NewLimiter("2-M", client)
	require.NoError(t, err)
	r := gin.New()
	r.Use(middleware.RateLimit(l))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func hit(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:4000"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_MemoryStore(t *testing.T) {
	r := limitedRouter(t, nil)

	assert.Equal(t, http.StatusOK, hit(r).Code)
	second := hit(r)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r).Code)
}

func TestRateLimit_RedisStoreIsShared(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	first := limitedRouter(t, client)
	second := limitedRouter(t, client)

	assert.Equal(t, http.StatusOK, hit(first).Code)
	assert.Equal(t, http.StatusOK, hit(second).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(first).Code)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots", nil)
	assert.Error(t, err)
}

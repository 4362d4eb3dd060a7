package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// httptest requests carry RemoteAddr 192.0.2.1:1234, so this is the key
// the middleware builds for the /login route.
const limiterKey = "ratelimit:/login:192.0.2.1"

func limiterTestRouter(client *redis.Client, limit int64, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/login", middleware.RateLimit(client, limit, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})
	return r
}

func TestRateLimit_UnderLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectIncr(limiterKey).SetVal(1)
	mock.ExpectExpire(limiterKey, time.Minute).SetVal(true)

	r := limiterTestRouter(client, 5, time.Minute)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_OverLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectIncr(limiterKey).SetVal(6)

	r := limiterTestRouter(client, 5, time.Minute)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_WindowSetOnlyOnFirstHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectIncr(limiterKey).SetVal(2)

	r := limiterTestRouter(client, 5, time.Minute)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_RedisDownFailsOpen(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectIncr(limiterKey).SetErr(assert.AnError)

	r := limiterTestRouter(client, 5, time.Minute)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/auth"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(t *testing.T, tokens *auth.JWT) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.Auth(tokens))
	r.GET("/whoami", func(c *gin.Context) {
		uid, _ := c.Get(rest.ContextUserKey)
		c.JSON(http.StatusOK, gin.H{"userId": uid})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.New([]byte("secret"))
	token, err := tokens.NewToken("user-123", time.Hour, time.Now())
	require.NoError(t, err)

	r := authTestRouter(t, tokens)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-123")
}

func TestAuth_MissingHeader(t *testing.T) {
	r := authTestRouter(t, auth.New([]byte("secret")))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := authTestRouter(t, auth.New([]byte("secret")))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	other := auth.New([]byte("other"))
	token, err := other.NewToken("user-123", time.Hour, time.Now())
	require.NoError(t, err)

	r := authTestRouter(t, auth.New([]byte("secret")))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := auth.New([]byte("secret"))
	token, err := tokens.NewToken("user-123", time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	r := authTestRouter(t, tokens)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

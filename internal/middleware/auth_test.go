package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"evently_backend/internal/auth"
	"evently_backend/internal/config"
	"evently_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	router.GET("/admin-only", AuthMiddleware(), RoleMiddleware(models.UserRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/staff", AuthMiddleware(), RequireRoles(models.UserRoleAdmin, models.UserRoleProvider), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/optional", OptionalAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	return router
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	router := newAuthTestRouter(t)

	w := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	router := newAuthTestRouter(t)

	w := doRequest(router, "/protected", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := newAuthTestRouter(t)

	token, err := auth.GenerateToken("user-42", "u@test.com", "user")
	require.NoError(t, err)

	w := doRequest(router, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestRoleMiddleware(t *testing.T) {
	router := newAuthTestRouter(t)

	userToken, err := auth.GenerateToken("user-1", "u@test.com", "user")
	require.NoError(t, err)
	adminToken, err := auth.GenerateToken("admin-1", "a@test.com", "admin")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin-only", userToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/admin-only", adminToken).Code)
}

func TestRequireRoles(t *testing.T) {
	router := newAuthTestRouter(t)

	providerToken, err := auth.GenerateToken("prov-1", "p@test.com", "provider")
	require.NoError(t, err)
	userToken, err := auth.GenerateToken("user-1", "u@test.com", "user")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(router, "/staff", providerToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/staff", userToken).Code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router := newAuthTestRouter(t)

	// Без токена запрос проходит с пустым userID
	w := doRequest(router, "/optional", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)

	// Мусорный токен тоже не валит запрос
	w = doRequest(router, "/optional", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)

	// Валидный токен привязывает пользователя
	token, err := auth.GenerateToken("user-7", "u@test.com", "user")
	require.NoError(t, err)
	w = doRequest(router, "/optional", token)
	assert.Contains(t, w.Body.String(), "user-7")
}

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/content_platform_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	r.GET("/probe", handlers...)
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT("user-1", testSecret, time.Hour, "cms")
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("user-1", testSecret, -time.Minute, "cms")
	require.NoError(t, err)
	noSubject, err := utils.GenerateJWT("", testSecret, time.Hour, "cms")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "user-1"},
		{"missing header", "", http.StatusUnauthorized, "Bearer {token}"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer {token}"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"bad signature", "Bearer " + valid + "x", http.StatusUnauthorized, "Invalid token"},
		{"no subject", "Bearer " + noSubject, http.StatusUnauthorized, "Invalid token claims"},
	}
	r := newRouter(AuthMiddleware(testSecret))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	r := newRouter(OptionalAuthMiddleware(testSecret))

	w := doGet(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	valid, err := utils.GenerateJWT("user-2", testSecret, time.Hour, "cms")
	require.NoError(t, err)
	w = doGet(r, "Bearer "+valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-2", w.Body.String())

	w = doGet(r, "Bearer nonsense")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStructuredLoggingMiddleware_SetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(&buf, nil))))
	r.GET("/probe", func(c *gin.Context) {
		GetLoggerFromContext(c).Info("inside")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"msg":"Request completed"`)
}

func TestRateLimit(t *testing.T) {
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(RateLimit(lim))

	assert.Equal(t, http.StatusOK, doGet(r, "").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "").Code)

	_, err = NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestRouteEventName(t *testing.T) {
	assert.Equal(t, "post_tenants_articles", routeEventName(http.MethodPost, "/api/v1/tenants/:tenant_id/articles"))
	assert.Equal(t, "post_tenants_articles_transitions",
		routeEventName(http.MethodPost, "/api/v1/tenants/:tenant_id/articles/:article_id/transitions"))
	assert.Equal(t, "", routeEventName(http.MethodGet, ""))
}

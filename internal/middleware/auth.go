package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/content_platform_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer JWTs
// and stores the subject as the acting user ID.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		tokenString, ok := bearerToken(c)
		if !ok {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}
		if !authenticate(c, tokenString, jwtSecret) {
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware authenticates the request when a bearer token is
// present and lets anonymous requests through untouched.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}
		if !authenticate(c, tokenString, jwtSecret) {
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// authenticate validates the token and enriches the request context. It
// aborts the request and returns false on failure.
func authenticate(c *gin.Context, tokenString, jwtSecret string) bool {
	logger := GetLoggerFromCtx(c.Request.Context())
	claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
	if err != nil {
		logger.Warn("Invalid token", "error", err)
		msg := "Invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Token has expired"
		} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
			msg = "Token not valid yet"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return false
	}
	if claims.Subject == "" {
		logger.Error("User ID (subject) missing from valid token")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return false
	}

	ctx := WithUserID(c.Request.Context(), claims.Subject)
	ctx = WithLogger(ctx, logger.With(slog.String("user_id", claims.Subject)))
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), claims.Subject)
	return true
}

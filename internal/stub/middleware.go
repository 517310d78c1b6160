package stub

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sportmart.client/internal/domain/entities"
	"sportmart.client/pkg/jwt"
	"sportmart.client/pkg/logger"
)

const (
	userIDKey = "user_id"
	roleKey   = "user_role"
)

// RequestIDMiddleware generates or propagates the per-request id.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)

		// string key for pkg/logger compatibility
		ctx := context.WithValue(c.Request.Context(), "request_id", id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// LoggerMiddleware logs each request through the structured logger.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}

// AuthMiddleware validates the bearer token and stores identity in the
// gin context.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(roleKey, entities.Role(claims.Role))
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got, ok := c.Get(roleKey); !ok || got.(entities.Role) != role {
			abortError(c, http.StatusForbidden, "insufficient role")
			return
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(userIDKey); ok {
		return v.(uuid.UUID)
	}
	return uuid.Nil
}

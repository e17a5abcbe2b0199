package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lostxrotimi/service-studio/internal/common/auth"
	"github.com/lostxrotimi/service-studio/internal/common/response"
)

const (
	userIDKey   = "user_id"
	userRoleKey = "user_role"
)

// AuthMiddleware requires a valid bearer token and stores its subject and role in the context.
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c, "missing bearer token")
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(userRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole rejects requests whose token does not carry role.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := GetUserRole(c)
		if !ok || got != role {
			response.Forbidden(c, "insufficient role")
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated subject.
func GetUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// GetUserRole returns the authenticated role.
func GetUserRole(c *gin.Context) (auth.Role, bool) {
	v, ok := c.Get(userRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(auth.Role)
	return role, ok
}

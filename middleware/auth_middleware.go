package middleware

import (
	"net/http"
	"strings"

	"github.com/capstone-portal/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the calling group account from a Bearer token or the
// access_token cookie and stores its identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			return
		}

		claims, err := services.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// extractToken reads the token from the Authorization header, falling back to
// the HttpOnly cookie set at login
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie("access_token")
	if err != nil {
		return ""
	}
	return cookie
}

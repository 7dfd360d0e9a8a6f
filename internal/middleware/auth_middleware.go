package middleware

import (
	"net/http"
	"strings"

	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format. Use Bearer <token>"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			c.Abort()
			return
		}

		// Set user information in the context for downstream handlers
		c.Set("userID", claims.UserID)
		c.Set("userName", claims.Name)
		c.Set("userEmail", claims.Email)
		c.Set("adminLevel", claims.AdminLevel)

		c.Next()
	}
}

// AdminOnly creates a Gin middleware that rejects non-admin accounts.
// Admin level 0 is a regular account, anything above grants admin access.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		level, exists := c.Get("adminLevel")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin level not found in token claims. Ensure AuthMiddleware runs first."})
			c.Abort()
			return
		}

		adminLevel, ok := level.(int)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin level in token is not an integer"})
			c.Abort()
			return
		}

		if adminLevel < 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admins only."})
			c.Abort()
			return
		}

		c.Next()
	}
}

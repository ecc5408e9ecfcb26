package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth guards the admin routes with a bcrypt-hashed API key supplied
// as a bearer token. An empty configured hash disables the routes entirely.
func AdminAuth(apiKeyHash string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKeyHash == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin API disabled"})
			return
		}

		header := c.GetHeader("Authorization")
		apiKey := strings.TrimPrefix(header, "Bearer ")
		if apiKey == "" || apiKey == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(apiKey)); err != nil {
			logger.Warn("admin auth failed", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}

		c.Next()
	}
}

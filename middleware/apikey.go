package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateAdminKey guards destructive admin endpoints. When ADMIN_API_KEY is
// unset the guard is disabled, so deployments that predate it keep working.
func ValidateAdminKey(c *gin.Context) {
	expected := os.Getenv("ADMIN_API_KEY")
	if expected == "" {
		c.Next()
		return
	}
	if c.GetHeader("X-API-KEY") != expected {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}

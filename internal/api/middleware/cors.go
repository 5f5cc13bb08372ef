package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS middleware
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
		origin := c.Request.Header.Get("Origin")

		if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
			// In development, be permissive - accept any origin
			if origin != "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
		} else {
			// In production, be strict about allowed origins
			if allowedOrigins != "" {
				originAllowed := false
				for _, allowed := range strings.Split(allowedOrigins, ",") {
					allowed = strings.TrimSpace(allowed)
					if allowed == "*" || origin == allowed {
						originAllowed = true
						c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
						break
					}
				}

				if !originAllowed && !strings.Contains(allowedOrigins, "*") {
					c.Status(http.StatusForbidden)
					c.Abort()
					return
				}
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

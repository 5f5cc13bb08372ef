package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP from various headers, respecting reverse
// proxies. Used consistently so the rate limiter keys on the real client.
func GetRealIP(c *gin.Context) string {
	// CDN header first (set by Cloudflare)
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}

	// X-Real-IP next (set by Nginx and similar)
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	// X-Forwarded-For can be a comma-separated list: client, proxy1, proxy2.
	// The leftmost entry is the client.
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	return c.ClientIP()
}

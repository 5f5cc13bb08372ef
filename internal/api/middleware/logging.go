package middleware

import (
	"time"

	"github.com/Sihle-Thwa/PortfolioV2/internal/logging"
	"github.com/Sihle-Thwa/PortfolioV2/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger is a middleware that logs request information
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			time.Since(start).String(),
		)
	}
}

package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Sihle-Thwa/PortfolioV2/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response for a dispatched submission
func HandleSuccess(c *gin.Context, message, messageID string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, common.NewSuccessResponse(message, messageID))
}

// HandleError sends an error response with the given status and category
func HandleError(c *gin.Context, status int, category, message string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, common.NewErrorResponse(category, message, nil))
}

// HandleValidationError sends a 400 listing every field issue found
func HandleValidationError(c *gin.Context, issues []common.Issue) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusBadRequest, common.NewValidationErrorResponse(issues))
}

// HandleRateLimited sends a 429 with retry metadata in both the body and the
// standard rate-limit headers
func HandleRateLimited(c *gin.Context, message string, limit int, window, retryAfter time.Duration) {
	seconds := int(retryAfter / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	reset := time.Now().Add(retryAfter).Unix()

	c.Header("Cache-Control", "no-store")
	c.Header("Retry-After", strconv.Itoa(seconds))
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", "0")
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	c.JSON(http.StatusTooManyRequests, common.NewErrorResponse(common.ErrRateLimited, message, map[string]interface{}{
		"retryAfter": windowLabel(window),
		"limit":      limitLabel(limit, window),
	}))
}

// windowLabel renders a window duration the way the frontend displays it
func windowLabel(window time.Duration) string {
	if window <= time.Hour {
		return "1 hour"
	}
	return "24 hours"
}

// limitLabel renders a threshold like "3 requests per hour"
func limitLabel(limit int, window time.Duration) string {
	unit := "hour"
	if window > time.Hour {
		unit = "day"
	}
	return fmt.Sprintf("%d requests per %s", limit, unit)
}

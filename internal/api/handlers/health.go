package handlers

import (
	"net/http"
	"strings"

	"github.com/Sihle-Thwa/PortfolioV2/internal/api/dto/common"
	"github.com/Sihle-Thwa/PortfolioV2/internal/config"
	"github.com/Sihle-Thwa/PortfolioV2/internal/logging"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the operational state of the contact pipeline.
// It only inspects configuration presence; it never sends mail.
type HealthHandler struct {
	cfg    *config.Config
	mailer MailDispatcher
	logger *logging.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, mailer MailDispatcher) *HealthHandler {
	return &HealthHandler{
		cfg:    cfg,
		mailer: mailer,
		logger: logging.GetGlobalLogger(),
	}
}

// Check handles GET requests to the health endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")

	if err := h.mailer.Verify(); err != nil {
		resp := common.NewHealthResponse(common.StatusError, err.Error())
		h.logger.Error("Health check failed: %s", resp.Message)
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	// Missing optional settings (display-from, public site URL) degrade the
	// auto-reply content but do not block delivery.
	if missing := h.cfg.MissingOptionalVars(); len(missing) > 0 {
		c.JSON(http.StatusOK, common.NewHealthResponse(common.StatusDegraded,
			"optional configuration missing: "+strings.Join(missing, ", ")))
		return
	}

	c.JSON(http.StatusOK, common.NewHealthResponse(common.StatusOperational, ""))
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Sihle-Thwa/PortfolioV2/internal/api/dto/common"
	"github.com/Sihle-Thwa/PortfolioV2/internal/api/dto/v1/contact"
	"github.com/Sihle-Thwa/PortfolioV2/internal/api/validation"
	"github.com/Sihle-Thwa/PortfolioV2/internal/config"
	"github.com/Sihle-Thwa/PortfolioV2/internal/logging"
	"github.com/Sihle-Thwa/PortfolioV2/internal/ratelimit"
	"github.com/Sihle-Thwa/PortfolioV2/internal/service"
	"github.com/Sihle-Thwa/PortfolioV2/internal/utils"

	"github.com/gin-gonic/gin"
)

// MailDispatcher is the outbound mail contract the pipeline depends on.
// Satisfied by service.MailService; swapped for a fake in tests.
type MailDispatcher interface {
	SendNotification(ctx context.Context, sub *contact.Submission) (*service.DispatchResult, error)
	SendAutoReply(ctx context.Context, senderEmail, senderName string) (*service.DispatchResult, error)
	Verify() error
}

// ContactHandler orchestrates the contact-submission pipeline:
// config check → parse → validate → rate limit (IP, then email) →
// notification send → best-effort auto-reply → response.
type ContactHandler struct {
	cfg       *config.Config
	limiter   *ratelimit.Store
	mailer    MailDispatcher
	validator *validation.ContactValidator
	logger    *logging.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(cfg *config.Config, limiter *ratelimit.Store, mailer MailDispatcher) *ContactHandler {
	return &ContactHandler{
		cfg:       cfg,
		limiter:   limiter,
		mailer:    mailer,
		validator: validation.NewContactValidator(),
		logger:    logging.GetGlobalLogger(),
	}
}

// Submit handles POST requests to the contact endpoint
func (h *ContactHandler) Submit(c *gin.Context) {
	// Transport config is checked before anything else: a deployment without
	// credentials must fail identically regardless of payload.
	if err := h.mailer.Verify(); err != nil {
		h.logger.Error("Contact pipeline misconfigured: %v", err)
		utils.HandleError(c, http.StatusServiceUnavailable, common.ErrConfiguration,
			"There is a configuration issue with the email service. Please contact the site administrator.")
		return
	}

	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, http.StatusBadRequest, common.ErrInvalidRequest,
			"Request body must be valid JSON")
		return
	}

	sub, issues := h.validator.Validate(req)
	if len(issues) > 0 {
		h.logger.Warn("Contact validation failed: %d issue(s)", len(issues))
		utils.HandleValidationError(c, issues)
		return
	}

	// IP check first: rejecting abuse is cheaper before touching per-email state
	clientIP := utils.GetRealIP(c)
	if allowed, retryAfter := h.limiter.Allow(clientIP, h.cfg.RateLimitIPMax, h.cfg.RateLimitIPWindow); !allowed {
		h.logger.Warn("IP rate limit exceeded: %s", clientIP)
		utils.HandleRateLimited(c,
			"Too many requests from your IP address. Please wait before sending another message.",
			h.cfg.RateLimitIPMax, h.cfg.RateLimitIPWindow, retryAfter)
		return
	}

	if allowed, retryAfter := h.limiter.Allow(sub.Email, h.cfg.RateLimitEmailMax, h.cfg.RateLimitEmailWindow); !allowed {
		h.logger.Warn("Email rate limit exceeded for a sender address")
		utils.HandleRateLimited(c,
			"You have reached the maximum number of messages for today. Please try again tomorrow.",
			h.cfg.RateLimitEmailMax, h.cfg.RateLimitEmailWindow, retryAfter)
		return
	}

	h.logger.Debug("Dispatching contact notification for %s", clientIP)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.MailTimeout)
	defer cancel()

	result, err := h.mailer.SendNotification(ctx, &sub)
	if err != nil {
		h.handleDispatchError(c, err)
		return
	}

	// Fire-and-forget: the response does not wait for the acknowledgment,
	// but its outcome is still observable in the logs.
	go h.sendAutoReply(sub.Email, sub.Name)

	h.logger.Info("Contact form submission successful")
	utils.HandleSuccess(c, "Message sent successfully! Thank you for reaching out.", result.MessageID)
}

// sendAutoReply runs in its own goroutine with its own timeout; failure is
// non-critical and never affects the submission outcome
func (h *ContactHandler) sendAutoReply(senderEmail, senderName string) {
	ctx, cancel := context.WithTimeout(context.Background(), h.cfg.MailTimeout)
	defer cancel()

	if _, err := h.mailer.SendAutoReply(ctx, senderEmail, senderName); err != nil {
		h.logger.Warn("Auto-reply failed (non-critical): %v", err)
	}
}

// handleDispatchError maps a notification send failure to a response
func (h *ContactHandler) handleDispatchError(c *gin.Context, err error) {
	method := c.Request.Method
	path := c.Request.URL.Path
	clientIP := utils.GetRealIP(c)

	switch {
	case errors.Is(err, service.ErrMailNotConfigured), errors.Is(err, service.ErrMailAuth):
		// Flagged distinctly: this is a deployment defect, not user-retriable
		h.logger.LogHTTPError(method, path, clientIP, http.StatusServiceUnavailable,
			"Email authentication/configuration failed - check SMTP credentials", err)
		utils.HandleError(c, http.StatusServiceUnavailable, common.ErrConfiguration,
			"There is a configuration issue with the email service. Please contact the site administrator.")
	case errors.Is(err, service.ErrMailUnavailable):
		h.logger.LogHTTPError(method, path, clientIP, http.StatusServiceUnavailable,
			"Notification send failed", err)
		utils.HandleError(c, http.StatusServiceUnavailable, common.ErrServiceUnavailable,
			"Unable to send your message at this time. Please try again later or contact me directly via email.")
	default:
		h.logger.LogHTTPError(method, path, clientIP, http.StatusInternalServerError,
			"Unexpected error in contact pipeline", err)
		utils.HandleError(c, http.StatusInternalServerError, common.ErrInternal,
			"An unexpected error occurred. Please try again later.")
	}
}

package routes

import (
	"github.com/Sihle-Thwa/PortfolioV2/internal/api/middleware"
	"github.com/Sihle-Thwa/PortfolioV2/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers) {
	logger := logging.GetGlobalLogger()

	// Create base API v1 group
	v1 := router.Group("/api/v1")

	// Contact routes (public)
	SetupContactRoutes(v1, h.Contact, h.Health)

	// Health check endpoint
	SetupHealthRoutes(router, h.Health)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))
}

package routes

import (
	"github.com/Sihle-Thwa/PortfolioV2/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, health *handlers.HealthHandler) {
	public := router.Group("/contact")
	{
		// Public endpoints, no auth required. OPTIONS preflight is answered
		// by the CORS middleware before reaching a handler.
		public.POST("", contact.Submit)
		public.GET("", health.Check)
	}
}

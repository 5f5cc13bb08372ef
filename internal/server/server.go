package server

import (
	"io"

	"github.com/Sihle-Thwa/PortfolioV2/internal/api/handlers"
	"github.com/Sihle-Thwa/PortfolioV2/internal/config"
	"github.com/Sihle-Thwa/PortfolioV2/internal/logging"
	"github.com/Sihle-Thwa/PortfolioV2/internal/ratelimit"
	"github.com/Sihle-Thwa/PortfolioV2/internal/server/routes"
	"github.com/Sihle-Thwa/PortfolioV2/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	limiter *ratelimit.Store
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, limiter *ratelimit.Store) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our own
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router:  router,
		cfg:     cfg,
		limiter: limiter,
	}
}

// Init wires middleware, handlers and routes
func (s *Server) Init() {
	logger := logging.GetGlobalLogger()

	routes.SetupGlobalMiddleware(s.router, logger)

	mailer := service.NewMailService(s.cfg)

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(s.cfg, s.limiter, mailer),
		Health:  handlers.NewHealthHandler(s.cfg, mailer),
	}

	routes.Setup(s.router, h)
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}

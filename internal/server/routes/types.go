package routes

import (
	"github.com/Sihle-Thwa/PortfolioV2/internal/api/handlers"
)

// Handlers groups every handler the router needs
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
}

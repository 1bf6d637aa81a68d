package v1

import (
	"career-navigator/internal/delivery/http/handler"
	"career-navigator/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Register mounts the read-only view pages. The session middleware attaches
// auth context when a bearer token is present but rejects no one: every page
// has a demo rendering.
func Register(r fiber.Router, auth *handler.AuthHandler, dashboard *handler.DashboardHandler, sessions *middleware.SessionMiddleware) {
	if r == nil {
		return
	}
	if sessions != nil {
		r.Use(sessions.Middleware())
	}

	if auth != nil {
		auth.RegisterRoutes(r.Group("/auth"))
	}
	if dashboard != nil {
		dashboard.RegisterRoutes(r)
	}
	handler.NewCatalogHandler().RegisterRoutes(r)
	handler.NewProfileHandler().RegisterRoutes(r)
}

package routes

import (
	"career-navigator/internal/delivery/http/handler"
	"career-navigator/internal/delivery/http/middleware"
	v1 "career-navigator/internal/delivery/http/routes/v1"
	"career-navigator/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	root      *handler.RootHandler
	proxy     *handler.ProxyHandler
	auth      *handler.AuthHandler
	dashboard *handler.DashboardHandler
	sessions  *middleware.SessionMiddleware
	push      *ws.Handler
}

func NewRegistry(
	proxy *handler.ProxyHandler,
	auth *handler.AuthHandler,
	dashboard *handler.DashboardHandler,
	sessions *middleware.SessionMiddleware,
	push *ws.Handler,
) *Registry {
	return &Registry{
		root:      handler.NewRootHandler(),
		proxy:     proxy,
		auth:      auth,
		dashboard: dashboard,
		sessions:  sessions,
		push:      push,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.root.RegisterRoutes(app)

	// The proxy endpoints live directly under /api with their original wire
	// shape; the view endpoints are versioned under /api/v1.
	api := app.Group("/api")
	r.proxy.RegisterRoutes(api)

	v1.Register(api.Group("/v1"), r.auth, r.dashboard, r.sessions)

	if r.push != nil {
		app.Get("/ws/session", r.push.HandleSessionWS)
	}
}

package handler

import (
	"career-navigator/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/", h.Root)
	app.Get("/health", h.Health)
}

// Root keeps the original helper server's banner; browser clients probe it to
// tell whether the proxy is up.
func (h *RootHandler) Root(c fiber.Ctx) error {
	return c.SendString("Supabase helper server running")
}

func (h *RootHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

package handler

import (
	"strings"

	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/demo"
	"career-navigator/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// ProfileHandler backs the profile editor page. Reads come from the demo
// dataset; the write path is the /api/upsert-profile proxy endpoint.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetProfile)
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		if sess := middleware.SessionFromCtx(c); sess != nil {
			email = sess.Email
		}
	}

	profiles := demo.Profiles()
	if email != "" {
		for _, p := range profiles {
			if strings.EqualFold(p.Email, email) {
				return response.Success(c, fiber.StatusOK, response.MessageOK, p)
			}
		}
	}

	// The editor opens pre-filled with the first demo profile.
	return response.Success(c, fiber.StatusOK, response.MessageOK, profiles[0])
}

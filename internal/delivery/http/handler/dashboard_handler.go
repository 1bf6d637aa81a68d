package handler

import (
	"context"

	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/domain/session"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase/dashboard"

	"github.com/gofiber/fiber/v3"
)

type DashboardUsecase interface {
	Resolve(ctx context.Context, sess *session.Session) dashboard.View
}

type DashboardHandler struct {
	uc DashboardUsecase
}

func NewDashboardHandler(uc DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.GetDashboard)
}

// GetDashboard resolves per request: live roadmaps for a bearer-identified
// user, demo data for everyone else (anonymous and guest alike).
func (h *DashboardHandler) GetDashboard(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	view := h.uc.Resolve(c.Context(), sess)
	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}

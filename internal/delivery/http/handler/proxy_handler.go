package handler

import (
	"context"
	"encoding/json"
	"errors"

	uproxy "career-navigator/internal/usecase/proxy"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ProxyUsecase is the pair of pass-through writes behind /api.
type ProxyUsecase interface {
	UpsertProfile(ctx context.Context, profile map[string]any) ([]map[string]any, error)
	SaveRoadmap(ctx context.Context, userID string, payload json.RawMessage) ([]map[string]any, error)
}

// ProxyHandler serves the two persistence endpoints with the wire format the
// original helper server used: `{"data":[...]}` on success, `{"error":msg}`
// on failure. These bypass the v1 envelope on purpose.
type ProxyHandler struct {
	uc       ProxyUsecase
	validate *validator.Validate
}

type saveRoadmapRequest struct {
	UserID  string          `json:"user_id" validate:"required"`
	Roadmap json.RawMessage `json:"roadmap" validate:"required"`
}

func NewProxyHandler(uc ProxyUsecase) *ProxyHandler {
	return &ProxyHandler{uc: uc, validate: validator.New()}
}

func (h *ProxyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/upsert-profile", h.UpsertProfile)
	r.Post("/save-roadmap", h.SaveRoadmap)
}

func (h *ProxyHandler) UpsertProfile(c fiber.Ctx) error {
	var profile map[string]any
	if err := c.Bind().Body(&profile); err != nil || len(profile) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing profile in body"})
	}

	rows, err := h.uc.UpsertProfile(c.Context(), profile)
	if err != nil {
		return proxyError(c, err)
	}
	return c.JSON(fiber.Map{"data": rows})
}

func (h *ProxyHandler) SaveRoadmap(c fiber.Ctx) error {
	var req saveRoadmapRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing user_id or roadmap"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing user_id or roadmap"})
	}

	rows, err := h.uc.SaveRoadmap(c.Context(), req.UserID, req.Roadmap)
	if err != nil {
		return proxyError(c, err)
	}
	return c.JSON(fiber.Map{"data": rows})
}

// proxyError keeps validation at 400 and reports everything else as a 500
// carrying the store's message verbatim. Never retried.
func proxyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, uproxy.ErrMissingProfile):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing profile in body"})
	case errors.Is(err, uproxy.ErrMissingRoadmapFields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing user_id or roadmap"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

package handler

import (
	"context"

	"career-navigator/internal/authgate"
	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/domain/session"
	"career-navigator/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AuthStore is the slice of the store client the auth endpoints call.
type AuthStore interface {
	SignUp(ctx context.Context, email, password, fullName string) error
	SignInWithPassword(ctx context.Context, email, password string) (*session.Session, error)
	SignInWithMagicLink(ctx context.Context, email string) error
}

// AuthHandler drives the credential flow over HTTP. Validation mirrors the
// credential form exactly: locally rejected input never reaches the store,
// and store failures come back with their message untouched.
type AuthHandler struct {
	store AuthStore
	gate  *authgate.Gate
}

type signupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type magicLinkRequest struct {
	Email string `json:"email"`
}

func NewAuthHandler(store AuthStore, gate *authgate.Gate) *AuthHandler {
	return &AuthHandler{store: store, gate: gate}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/magic-link", h.MagicLink)
	r.Post("/guest", h.Guest)
	r.Post("/logout", h.Logout)
	r.Get("/state", h.State)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if msg := authgate.ValidateSignupPassword(req.Password, req.ConfirmPassword); msg != "" {
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, nil)
	}

	// Store rejections surface verbatim; 4xx so the message survives the
	// error middleware.
	if err := h.store.SignUp(c.Context(), req.Email, req.Password, req.FullName); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	// No session yet: the user confirms by email and then logs in.
	return response.Success(c, fiber.StatusOK, "Sign up successful! Please check your email to confirm.", nil)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.store.SignInWithPassword(c.Context(), req.Email, req.Password)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, err.Error(), nil, err)
	}

	data := map[string]any{
		"user_id":       s.UserID,
		"email":         s.Email,
		"access_token":  s.AccessToken,
		"refresh_token": s.RefreshToken,
	}
	return response.Success(c, fiber.StatusOK, "Logged in successfully!", data)
}

func (h *AuthHandler) MagicLink(c fiber.Ctx) error {
	var req magicLinkRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.store.SignInWithMagicLink(c.Context(), req.Email); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	// The link completes login out-of-band; auth state does not change here.
	return response.Success(c, fiber.StatusOK, "Check your email for a magic link to log in!", nil)
}

func (h *AuthHandler) Guest(c fiber.Ctx) error {
	h.gate.ContinueAsGuest()
	return h.State(c)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.gate.SignOut(c.Context()); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}
	return h.State(c)
}

func (h *AuthHandler) State(c fiber.Ctx) error {
	st := h.gate.State()
	data := map[string]any{
		"phase":         st.Phase.String(),
		"authenticated": st.Authenticated(),
	}
	if st.Session != nil {
		data["user_id"] = st.Session.UserID
		data["email"] = st.Session.Email
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

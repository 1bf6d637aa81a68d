package middleware

import (
	"strings"

	"career-navigator/internal/domain/session"
	"career-navigator/internal/pkg/sessiontoken"

	"github.com/gofiber/fiber/v3"
)

const CtxSessionKey = "auth_session"

// SessionMiddleware attaches the store session described by a bearer token to
// the request context. It never rejects: the view pages render demo data for
// anonymous and guest callers, so a missing or invalid token just means no
// session. The context value is how the auth dependency stays visible instead
// of hiding in a module-level singleton.
type SessionMiddleware struct {
	tokens *sessiontoken.Parser
}

func NewSessionMiddleware(tokens *sessiontoken.Parser) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tok, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return c.Next()
		}

		claims, err := m.tokens.Parse(tok)
		if err != nil {
			return c.Next()
		}

		s := &session.Session{
			UserID:      claims.Subject,
			Email:       claims.Email,
			AccessToken: tok,
		}
		if claims.ExpiresAt != nil {
			s.ExpiresAt = claims.ExpiresAt.Time
		}
		c.Locals(CtxSessionKey, s)

		return c.Next()
	}
}

// SessionFromCtx returns the request's session, nil when anonymous.
func SessionFromCtx(c fiber.Ctx) *session.Session {
	s, _ := c.Locals(CtxSessionKey).(*session.Session)
	return s
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}

package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-navigator/internal/pkg/response"
)

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"  Bearer abc  ", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := bearerTokenFromHeader(tc.header)
		if got != tc.want || ok != tc.ok {
			t.Errorf("bearerTokenFromHeader(%q) = (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}

func errorTestApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware().Middleware())
	app.Get("/boom", h)
	return app
}

func getEnvelope(t *testing.T, app *fiber.App) (int, response.SemanticResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var env response.SemanticResponse
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestErrorMiddleware_AppErrorKeepsStatusAndMessage(t *testing.T) {
	app := errorTestApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "already exists", map[string]any{"id": "u-1"}, nil)
	})

	status, env := getEnvelope(t, app)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "already exists", env.Message)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u-1", data["id"])
}

func TestErrorMiddleware_ServerErrorsAreHidden(t *testing.T) {
	app := errorTestApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadGateway, "store exploded: secret detail", nil, nil)
	})

	status, env := getEnvelope(t, app)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", env.Message, "5xx detail must not leak")
}

func TestErrorMiddleware_RecoversFromPanic(t *testing.T) {
	app := errorTestApp(func(c fiber.Ctx) error {
		panic("handler bug")
	})

	status, env := getEnvelope(t, app)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", env.Message)
}

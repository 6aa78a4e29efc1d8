package respond_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, handler fiber.Handler) (int, respond.Envelope) {
	t.Helper()

	app := fiber.New(fiber.Config{ErrorHandler: respond.ErrorHandler})
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env respond.Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestSuccessEnvelope(t *testing.T) {
	status, env := perform(t, func(c *fiber.Ctx) error {
		return respond.OK(c, fiber.Map{"answer": 42})
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, http.StatusOK, env.Status)
	assert.False(t, env.Error)
	assert.Empty(t, env.Message)
}

func TestErrorKindStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperr.Validationf("bad input"), http.StatusBadRequest},
		{"conflict", apperr.Conflictf("already there"), http.StatusBadRequest},
		{"not found", apperr.NotFoundf("missing"), http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized("no token"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("no way"), http.StatusForbidden},
		{"internal", apperr.Internal("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := perform(t, func(c *fiber.Ctx) error { return tc.err })
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.status, env.Status)
			assert.True(t, env.Error)
			assert.Equal(t, tc.err.Error(), env.Message)
		})
	}
}

func TestValidationDetailPassesThrough(t *testing.T) {
	status, env := perform(t, func(c *fiber.Ctx) error {
		return apperr.Validation("field errors", map[string]string{"name": "required"})
	})
	assert.Equal(t, http.StatusBadRequest, status)

	detail, ok := env.Detail.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "required", detail["name"])
}

func TestFiberErrorsKeepEnvelope(t *testing.T) {
	status, env := perform(t, func(c *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.True(t, env.Error)
}

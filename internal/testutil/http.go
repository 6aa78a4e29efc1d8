package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

// NewApp builds a Fiber app with the production error handler so the
// tests observe the same envelopes and status codes as clients do.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: respond.ErrorHandler})
}

// AsRestaurant stands in for the JWT middleware: it authenticates the
// request as the owner of the given restaurant.
func AsRestaurant(restaurantID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := restaurantID
		c.Locals(auth.CtxUserIDKey, uint(1))
		c.Locals(auth.CtxUserRoleKey, models.RoleRestaurant)
		c.Locals(auth.CtxRestaurantIDKey, &rid)
		return c.Next()
	}
}

// Envelope mirrors the response envelope with the detail left raw so
// each test can decode it into its own shape.
type Envelope struct {
	Status  int             `json:"status"`
	Error   bool            `json:"error"`
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

// Request performs an in-process request against the app and decodes
// the envelope.
func Request(t *testing.T, app *fiber.App, method, target string, body any) (int, Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", raw, err)
	}
	return resp.StatusCode, env
}

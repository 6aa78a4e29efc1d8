package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/config"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-at-least-32-chars-long"

func newAuthApp() *fiber.App {
	cfg := &config.Config{JWTSecret: testSecret}
	app := testutil.NewApp()
	app.Post("/api/account/register-super-admin", auth.RegisterSuperAdminHandler())
	app.Post("/api/account/login", auth.LoginHandler(cfg))

	protected := app.Group("", auth.JWTMiddleware(cfg))
	protected.Get("/api/account/me", auth.MeHandler())
	protected.Get("/api/admin-only",
		auth.RequireRole(models.RoleSuperAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })
	return app
}

func TestRegisterSuperAdminBootstrapOnce(t *testing.T) {
	testutil.OpenDB(t)
	app := newAuthApp()

	payload := fiber.Map{
		"first_name": "Root",
		"email":      "root@example.com",
		"password":   "root-password",
	}

	status, env := testutil.Request(t, app, http.MethodPost, "/api/account/register-super-admin", payload)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Superadmin created successfully", env.Message)

	var created auth.UserResponse
	require.NoError(t, json.Unmarshal(env.Detail, &created))
	assert.Equal(t, string(models.RoleSuperAdmin), created.Role)
	assert.True(t, created.IsActive)

	// A second bootstrap attempt is refused outright.
	status, env = testutil.Request(t, app, http.MethodPost, "/api/account/register-super-admin", payload)
	require.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "A superadmin already exists", env.Message)
}

func TestLoginFlow(t *testing.T) {
	testutil.OpenDB(t)
	app := newAuthApp()

	_, _ = testutil.Request(t, app, http.MethodPost, "/api/account/register-super-admin", fiber.Map{
		"first_name": "Root",
		"email":      "root@example.com",
		"password":   "root-password",
	})

	status, env := testutil.Request(t, app, http.MethodPost, "/api/account/login", fiber.Map{
		"email":    "Root@Example.com",
		"password": "root-password",
	})
	require.Equal(t, http.StatusOK, status)

	var detail struct {
		Token string            `json:"token"`
		User  auth.UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Detail, &detail))
	assert.NotEmpty(t, detail.Token)
	assert.Equal(t, "root@example.com", detail.User.Email)

	// Wrong password and unknown account both come back identical.
	status, env = testutil.Request(t, app, http.MethodPost, "/api/account/login", fiber.Map{
		"email":    "root@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", env.Message)

	status, env = testutil.Request(t, app, http.MethodPost, "/api/account/login", fiber.Map{
		"email":    "ghost@example.com",
		"password": "root-password",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", env.Message)
}

func TestLoginInactiveAccount(t *testing.T) {
	db := testutil.OpenDB(t)
	user := seedUser(t, db, "dormant@example.com") // seeded inactive
	app := newAuthApp()

	status, env := testutil.Request(t, app, http.MethodPost, "/api/account/login", fiber.Map{
		"email":    user.Email,
		"password": "original-pass",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Account is not active", env.Message)
}

func TestJWTMiddlewareAndRoleGate(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newAuthApp()

	user := seedUser(t, db, "staff@example.com")
	require.NoError(t, db.Model(user).Updates(map[string]any{
		"is_active": true,
		"role":      models.RoleKitchenStaff,
	}).Error)
	user.Role = models.RoleKitchenStaff

	token, err := auth.GenerateToken(testSecret, user)
	require.NoError(t, err)

	do := func(target, bearer string) int {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if bearer != "" {
			req.Header.Set("Authorization", bearer)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusUnauthorized, do("/api/account/me", ""))
	assert.Equal(t, http.StatusUnauthorized, do("/api/account/me", "Token "+token))
	assert.Equal(t, http.StatusUnauthorized, do("/api/account/me", "Bearer not-a-jwt"))
	assert.Equal(t, http.StatusOK, do("/api/account/me", "Bearer "+token))

	forged, err := auth.GenerateToken("some-other-secret-that-is-long-too", user)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do("/api/account/me", "Bearer "+forged))

	// Kitchen staff cannot pass a superadmin gate.
	assert.Equal(t, http.StatusForbidden, do("/api/admin-only", "Bearer "+token))
}

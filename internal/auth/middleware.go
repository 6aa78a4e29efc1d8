package auth

import (
	"fmt"
	"strings"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/config"
	"hotelapp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey       = "user_id"
	CtxUserRoleKey     = "user_role"
	CtxRestaurantIDKey = "restaurant_id"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperr.Unauthorized("Authorization header missing")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return apperr.Unauthorized("Authorization must be 'Bearer <token>'")
		}

		token, err := jwt.ParseWithClaims(parts[1], &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return apperr.Unauthorized("Invalid or expired token")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return apperr.Unauthorized("Could not parse token claims")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUserRoleKey, claims.Role)
		c.Locals(CtxRestaurantIDKey, claims.RestaurantID)

		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
		if !ok {
			return apperr.Forbidden("Could not resolve role")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return apperr.Forbidden("You are not allowed to perform this action")
	}
}

// CurrentUserID returns the authenticated user's id.
func CurrentUserID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(CtxUserIDKey).(uint)
	if !ok {
		return 0, apperr.Unauthorized("Could not resolve user")
	}
	return id, nil
}

// CurrentRole returns the authenticated user's role.
func CurrentRole(c *fiber.Ctx) (models.UserRole, error) {
	role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
	if !ok {
		return "", apperr.Unauthorized("Could not resolve role")
	}
	return role, nil
}

// CurrentRestaurantID returns the restaurant the caller is affiliated
// with. Restaurant owners and kitchen staff always have one.
func CurrentRestaurantID(c *fiber.Ctx) (uint, error) {
	ptr, ok := c.Locals(CtxRestaurantIDKey).(*uint)
	if !ok || ptr == nil {
		return 0, apperr.Unauthorized("Your account does not have an associated restaurant")
	}
	return *ptr, nil
}

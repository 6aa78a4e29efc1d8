package auth

import (
	"fmt"
	"strings"
	"time"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/config"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// A reset token is valid for 5 minutes from issuance and only once.
const resetTokenTTL = 300 * time.Second

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// POST /api/account/password/forgot
func ForgotPasswordHandler(cfg *config.Config, mailer Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ForgotPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || !strings.Contains(body.Email, "@") {
			return apperr.Validationf("A valid email is required")
		}

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return apperr.Validationf("User with this email address does not exist")
		}

		token := uuid.NewString()
		now := time.Now()
		user.PasswordResetToken = &token
		user.TokenCreatedAt = &now
		if err := database.DB.Save(&user).Error; err != nil {
			return apperr.Internal("Could not issue reset token")
		}

		link := fmt.Sprintf("%s/api/account/password/change/%s", cfg.PublicBaseURL, token)
		htmlBody := fmt.Sprintf(
			"<p>Hello %s,</p><p>Use the link below to set a new password. It expires in 5 minutes.</p><p><a href=%q>%s</a></p>",
			user.FirstName, link, link,
		)
		if err := mailer.Send(user.Email, "Password reset request", htmlBody); err != nil {
			logrus.Errorf("password reset mail to %s failed: %v", user.Email, err)
		}

		return respond.Message(c, fiber.StatusOK, "Password reset link sent to your email")
	}
}

// POST /api/account/password/change/:token
func ResetPasswordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Params("token")
		if _, err := uuid.Parse(token); err != nil {
			return apperr.Validationf("Invalid, expired, or used token")
		}

		var user models.User
		err := database.DB.Where("password_reset_token = ?", token).First(&user).Error
		if err != nil || user.TokenCreatedAt == nil {
			return apperr.Validationf("Invalid, expired, or used token")
		}
		if time.Since(*user.TokenCreatedAt) > resetTokenTTL {
			return apperr.Validationf("Invalid, expired, or used token")
		}

		var body ResetPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		if len(body.Password) < 8 {
			return apperr.Validationf("Password must be at least 8 characters")
		}
		if body.Password != body.ConfirmPassword {
			return apperr.Validationf("Passwords do not match")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Internal("Could not hash password")
		}

		// Consuming the token clears it and activates the account.
		updates := map[string]any{
			"password_hash":        string(hash),
			"password_reset_token": nil,
			"token_created_at":     nil,
			"is_active":            true,
		}
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			return apperr.Internal("Could not update password")
		}

		return respond.Message(c, fiber.StatusOK, "Password set successfully")
	}
}

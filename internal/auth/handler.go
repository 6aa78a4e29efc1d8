package auth

import (
	"strings"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/config"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Role         string `json:"role"`
	IsActive     bool   `json:"is_active"`
	RestaurantID *uint  `json:"restaurant_id"`
	CreatedAt    string `json:"created_at"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		RestaurantID: u.RestaurantID,
		CreatedAt:    u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type RegisterSuperAdminRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// POST /api/account/register-super-admin is a one-time bootstrap; refused
// once a superadmin exists.
func RegisterSuperAdminHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterSuperAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.FirstName == "" || body.Email == "" || body.Password == "" {
			return apperr.Validationf("First name, email and password are required")
		}

		var count int64
		database.DB.Model(&models.User{}).
			Where("role = ?", models.RoleSuperAdmin).
			Count(&count)
		if count > 0 {
			return apperr.Forbidden("A superadmin already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Internal("Could not hash password")
		}

		user := models.User{
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleSuperAdmin,
			IsActive:     true,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return apperr.Internal("Could not create user")
		}

		return respond.Created(c, ToUserResponse(&user), "Superadmin created successfully")
	}
}

// POST /api/account/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return apperr.Unauthorized("Invalid email or password")
		}
		if !user.IsActive {
			return apperr.Unauthorized("Account is not active")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return apperr.Unauthorized("Invalid email or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return apperr.Internal("Could not generate token")
		}

		return respond.OK(c, fiber.Map{
			"token": token,
			"user":  ToUserResponse(&user),
		})
	}
}

// GET /api/account/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := database.DB.Preload("Restaurant").First(&user, userID).Error; err != nil {
			return apperr.NotFoundf("User does not exist")
		}

		detail := fiber.Map{"user": ToUserResponse(&user)}
		if user.Restaurant != nil {
			detail["restaurant"] = fiber.Map{
				"id":   user.Restaurant.ID,
				"name": user.Restaurant.Name,
			}
		}
		return respond.OK(c, detail)
	}
}

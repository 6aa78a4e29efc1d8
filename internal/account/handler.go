package account

import (
	"strings"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterUserRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	RestaurantID    uint   `json:"restaurant_id"`
}

func validatePhoneNumber(phone string) *apperr.Error {
	if len(phone) != 10 {
		return apperr.Validationf("Phone number must be exactly 10 digits long")
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return apperr.Validationf("Phone number must contain only digits")
		}
	}
	return nil
}

func validateRegistration(body *RegisterUserRequest) error {
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	body.FirstName = strings.TrimSpace(body.FirstName)

	if body.FirstName == "" || body.Email == "" || body.Password == "" {
		return apperr.Validationf("First name, email and password are required")
	}
	if len(body.Password) < 8 {
		return apperr.Validationf("Password must be at least 8 characters")
	}
	if body.Password != body.ConfirmPassword {
		return apperr.Validationf("Passwords do not match")
	}
	if body.PhoneNumber != "" {
		if err := validatePhoneNumber(body.PhoneNumber); err != nil {
			return err
		}
	}

	var exist models.User
	if err := database.DB.Where("email = ?", body.Email).First(&exist).Error; err == nil {
		return apperr.Conflictf("This email is already registered")
	}
	return nil
}

// GET /api/account/list returns every user except superadmins.
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.
			Where("role <> ?", models.RoleSuperAdmin).
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			return apperr.Internal("Could not list users")
		}

		res := make([]auth.UserResponse, 0, len(users))
		for i := range users {
			res = append(res, auth.ToUserResponse(&users[i]))
		}
		return respond.OK(c, res)
	}
}

// POST /api/account/register-owner: superadmin creates the owner
// account bound to an existing restaurant.
func RegisterOwnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterUserRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		if err := validateRegistration(&body); err != nil {
			return err
		}

		var restaurant models.Restaurant
		if err := database.DB.First(&restaurant, body.RestaurantID).Error; err != nil {
			return apperr.NotFoundf("Restaurant not found")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Internal("Could not hash password")
		}

		user := models.User{
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			Email:        body.Email,
			PhoneNumber:  body.PhoneNumber,
			PasswordHash: string(hash),
			Role:         models.RoleRestaurant,
			IsActive:     true,
			RestaurantID: &restaurant.ID,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return apperr.Internal("Could not create user")
		}

		return respond.Created(c, auth.ToUserResponse(&user), "User created successfully")
	}
}

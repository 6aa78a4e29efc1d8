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

type UpdateStaffRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	IsActive    *bool   `json:"is_active"`
}

type StaffChangePasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loadOwnStaff resolves a kitchen-staff user and checks it belongs to
// the caller's restaurant.
func loadOwnStaff(c *fiber.Ctx, staffID string) (*models.User, error) {
	restaurantID, err := auth.CurrentRestaurantID(c)
	if err != nil {
		return nil, err
	}

	var staff models.User
	if err := database.DB.First(&staff, "id = ?", staffID).Error; err != nil {
		return nil, apperr.NotFoundf("User does not exist")
	}
	if staff.Role != models.RoleKitchenStaff {
		return nil, apperr.NotFoundf("Kitchen staff user not found")
	}
	if staff.RestaurantID == nil {
		return nil, apperr.NotFoundf("The specified user does not have an associated restaurant")
	}
	if *staff.RestaurantID != restaurantID {
		return nil, apperr.Forbidden("You are not authorized to perform this action")
	}
	return &staff, nil
}

// POST /api/account/kitchen-staff
func CreateKitchenStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var body RegisterUserRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		if err := validateRegistration(&body); err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Internal("Could not hash password")
		}

		staff := models.User{
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			Email:        body.Email,
			PhoneNumber:  body.PhoneNumber,
			PasswordHash: string(hash),
			Role:         models.RoleKitchenStaff,
			IsActive:     true,
			RestaurantID: &restaurantID,
		}
		if err := database.DB.Create(&staff).Error; err != nil {
			return apperr.Internal("Could not create user")
		}

		return respond.Created(c, auth.ToUserResponse(&staff), "User created successfully")
	}
}

// GET /api/account/kitchen-staff?isactive=true|false
func ListKitchenStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		isActive := strings.ToLower(c.Query("isactive"))
		if isActive != "true" && isActive != "false" {
			return apperr.Validationf("isactive query parameter must be true or false")
		}

		var staff []models.User
		if err := database.DB.
			Where("role = ? AND restaurant_id = ? AND is_active = ?",
				models.RoleKitchenStaff, restaurantID, isActive == "true").
			Order("created_at DESC").
			Find(&staff).Error; err != nil {
			return apperr.Internal("Could not list kitchen staff")
		}

		res := make([]auth.UserResponse, 0, len(staff))
		for i := range staff {
			res = append(res, auth.ToUserResponse(&staff[i]))
		}
		return respond.OK(c, res)
	}
}

// PUT /api/account/kitchen-staff/:id
func UpdateKitchenStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		staff, err := loadOwnStaff(c, c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdateStaffRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}

		if body.FirstName != nil {
			name := strings.TrimSpace(*body.FirstName)
			if name == "" {
				return apperr.Validationf("First name cannot be empty")
			}
			staff.FirstName = name
		}
		if body.LastName != nil {
			staff.LastName = strings.TrimSpace(*body.LastName)
		}
		if body.PhoneNumber != nil {
			if err := validatePhoneNumber(*body.PhoneNumber); err != nil {
				return err
			}
			staff.PhoneNumber = *body.PhoneNumber
		}
		if body.IsActive != nil {
			staff.IsActive = *body.IsActive
		}

		if err := database.DB.Save(staff).Error; err != nil {
			return apperr.Internal("Could not update user")
		}
		return respond.JSON(c, fiber.StatusOK, auth.ToUserResponse(staff), "User data updated successfully")
	}
}

// DELETE /api/account/kitchen-staff/:id
func DeleteKitchenStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		staff, err := loadOwnStaff(c, c.Params("id"))
		if err != nil {
			return err
		}

		if err := database.DB.Delete(staff).Error; err != nil {
			return apperr.Internal("Could not delete user")
		}
		return respond.Message(c, fiber.StatusOK, "User deleted successfully")
	}
}

// POST /api/account/kitchen-staff/password: owner sets a staff
// password directly, without the mail round trip.
func ChangeKitchenStaffPasswordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var body StaffChangePasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		if len(body.Password) < 8 {
			return apperr.Validationf("Password must be at least 8 characters")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		var staff models.User
		if err := database.DB.
			Where("email = ? AND role = ?", body.Email, models.RoleKitchenStaff).
			First(&staff).Error; err != nil {
			return apperr.NotFoundf("User not found")
		}
		if staff.RestaurantID == nil || *staff.RestaurantID != restaurantID {
			return apperr.Forbidden("You are not authorized to perform this action")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Internal("Could not hash password")
		}
		if err := database.DB.Model(&staff).Update("password_hash", string(hash)).Error; err != nil {
			return apperr.Internal("Could not update password")
		}
		return respond.Message(c, fiber.StatusOK, "Password changed successfully")
	}
}

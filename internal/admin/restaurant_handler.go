package admin

import (
	"strings"
	"time"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateRestaurantRequest struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	OpeningTime          string   `json:"opening_time"`
	ClosingTime          string   `json:"closing_time"`
	PhoneNumber          string   `json:"phone_number"`
	Address              string   `json:"address"`
	Logo                 string   `json:"logo"`
	RestaurantCategoryID uint     `json:"restaurant_category_id"`
	ClosedDays           []string `json:"closed_days"`
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OpeningTime *string `json:"opening_time"`
	ClosingTime *string `json:"closing_time"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	Logo        *string `json:"logo"`
}

type RestaurantResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	OpeningTime string          `json:"opening_time"`
	ClosingTime string          `json:"closing_time"`
	PhoneNumber string          `json:"phone_number"`
	Address     string          `json:"address"`
	Logo        string          `json:"logo"`
	Category    string          `json:"category"`
	OpenDays    map[string]bool `json:"open_days"`
	CreatedAt   string          `json:"created_at"`
}

func toRestaurantResponse(r *models.Restaurant) RestaurantResponse {
	openDays := make(map[string]bool, len(r.Days))
	for _, d := range r.Days {
		openDays[d.Weekday] = d.IsOpen
	}
	return RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		Logo:        r.Logo,
		Category:    r.Category.Name,
		OpenDays:    openDays,
		CreatedAt:   r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func parseClock(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}

func validateOperatingHours(opening, closing string) error {
	openAt, err := parseClock(opening)
	if err != nil {
		return apperr.Validationf("opening_time must be in HH:MM format")
	}
	closeAt, err := parseClock(closing)
	if err != nil {
		return apperr.Validationf("closing_time must be in HH:MM format")
	}
	if !closeAt.After(openAt) {
		return apperr.Validationf("Closing time should be after opening time")
	}
	return nil
}

func validatePhone(phone string) error {
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

// POST /api/restaurant/create
func CreateRestaurantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRestaurantRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return apperr.Validationf("Restaurant name cannot be empty")
		}
		if body.RestaurantCategoryID == 0 {
			return apperr.NotFoundf("Restaurant category is required")
		}
		if err := validateOperatingHours(body.OpeningTime, body.ClosingTime); err != nil {
			return err
		}
		if err := validatePhone(body.PhoneNumber); err != nil {
			return err
		}

		var category models.Category
		if err := database.DB.First(&category, body.RestaurantCategoryID).Error; err != nil {
			return apperr.NotFoundf("Restaurant category not found")
		}

		closed := make(map[string]bool, len(body.ClosedDays))
		for _, d := range body.ClosedDays {
			closed[strings.ToLower(strings.TrimSpace(d))] = true
		}

		restaurant := models.Restaurant{
			Name:        body.Name,
			Description: body.Description,
			OpeningTime: body.OpeningTime,
			ClosingTime: body.ClosingTime,
			PhoneNumber: body.PhoneNumber,
			Address:     body.Address,
			Logo:        body.Logo,
			CategoryID:  category.ID,
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&restaurant).Error; err != nil {
				return err
			}
			for _, weekday := range models.Weekdays {
				day := models.Day{
					RestaurantID: restaurant.ID,
					Weekday:      weekday,
					IsOpen:       !closed[weekday],
				}
				if err := tx.Create(&day).Error; err != nil {
					return err
				}
				restaurant.Days = append(restaurant.Days, day)
			}
			return nil
		})
		if err != nil {
			return apperr.Internal("Could not create restaurant")
		}

		restaurant.Category = category
		return respond.Created(c, toRestaurantResponse(&restaurant), "Restaurant created successfully")
	}
}

func applyRestaurantUpdate(restaurant *models.Restaurant, body *UpdateRestaurantRequest) error {
	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			return apperr.Validationf("Restaurant name cannot be empty")
		}
		restaurant.Name = name
	}
	if body.Description != nil {
		restaurant.Description = *body.Description
	}

	opening := restaurant.OpeningTime
	closing := restaurant.ClosingTime
	if body.OpeningTime != nil {
		opening = *body.OpeningTime
	}
	if body.ClosingTime != nil {
		closing = *body.ClosingTime
	}
	if body.OpeningTime != nil || body.ClosingTime != nil {
		if err := validateOperatingHours(opening, closing); err != nil {
			return err
		}
		restaurant.OpeningTime = opening
		restaurant.ClosingTime = closing
	}

	if body.PhoneNumber != nil {
		if err := validatePhone(*body.PhoneNumber); err != nil {
			return err
		}
		restaurant.PhoneNumber = *body.PhoneNumber
	}
	if body.Address != nil {
		restaurant.Address = *body.Address
	}
	if body.Logo != nil {
		restaurant.Logo = *body.Logo
	}
	return nil
}

// PUT /api/restaurant/update/:id
func UpdateRestaurantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var restaurant models.Restaurant
		if err := database.DB.Preload("Category").Preload("Days").
			First(&restaurant, "id = ?", c.Params("id")).Error; err != nil {
			return apperr.NotFoundf("Restaurant not found")
		}

		var body UpdateRestaurantRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		if err := applyRestaurantUpdate(&restaurant, &body); err != nil {
			return err
		}

		if err := database.DB.Save(&restaurant).Error; err != nil {
			return apperr.Internal("Could not update restaurant")
		}
		return respond.OK(c, toRestaurantResponse(&restaurant))
	}
}

// PUT /api/restaurant/update/own/profile: the affiliated owner updates
// their own restaurant.
func UpdateOwnRestaurantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var restaurant models.Restaurant
		if err := database.DB.Preload("Category").Preload("Days").
			First(&restaurant, restaurantID).Error; err != nil {
			return apperr.NotFoundf("Restaurant not found")
		}

		var body UpdateRestaurantRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		if err := applyRestaurantUpdate(&restaurant, &body); err != nil {
			return err
		}

		if err := database.DB.Save(&restaurant).Error; err != nil {
			return apperr.Internal("Could not update restaurant")
		}
		return respond.OK(c, toRestaurantResponse(&restaurant))
	}
}

// DELETE /api/restaurant/delete/:id removes the restaurant and every
// owned row in one transaction.
func DeleteRestaurantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var restaurant models.Restaurant
		if err := database.DB.First(&restaurant, "id = ?", c.Params("id")).Error; err != nil {
			return apperr.NotFoundf("Restaurant not found")
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.Inventory{}).Error; err != nil {
				return err
			}
			var menuTypeIDs []uint
			if err := tx.Model(&models.MenuType{}).
				Where("restaurant_id = ?", restaurant.ID).
				Pluck("id", &menuTypeIDs).Error; err != nil {
				return err
			}
			if len(menuTypeIDs) > 0 {
				if err := tx.Where("menu_type_id IN ?", menuTypeIDs).Delete(&models.MenuSubtype{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.MenuType{}).Error; err != nil {
				return err
			}
			if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.Table{}).Error; err != nil {
				return err
			}
			if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.Day{}).Error; err != nil {
				return err
			}
			return tx.Delete(&restaurant).Error
		})
		if err != nil {
			return apperr.Internal("Could not delete restaurant")
		}
		return respond.Message(c, fiber.StatusOK, "Restaurant deleted successfully")
	}
}

// GET /api/restaurant/list
func ListRestaurantsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var restaurants []models.Restaurant
		if err := database.DB.Preload("Category").Preload("Days").
			Order("created_at DESC").
			Find(&restaurants).Error; err != nil {
			return apperr.Internal("Could not list restaurants")
		}

		res := make([]RestaurantResponse, 0, len(restaurants))
		for i := range restaurants {
			res = append(res, toRestaurantResponse(&restaurants[i]))
		}
		return respond.OK(c, res)
	}
}

// GET /api/restaurant/detail/:id
func RestaurantDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var restaurant models.Restaurant
		if err := database.DB.Preload("Category").Preload("Days").
			First(&restaurant, "id = ?", c.Params("id")).Error; err != nil {
			return apperr.NotFoundf("Restaurant not found")
		}
		return respond.OK(c, toRestaurantResponse(&restaurant))
	}
}

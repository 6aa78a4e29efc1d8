package restaurant

import (
	"strings"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

type CreateMenuTypeRequest struct {
	Name string `json:"name"`
}

type CreateMenuSubtypeRequest struct {
	Name         string `json:"name"`
	CategoryType string `json:"categorytype"` // veg / non-veg
	MenuTypeID   uint   `json:"menutype_id"`
}

// POST /api/restaurant/inventory/menutypes
func CreateMenuTypeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var body CreateMenuTypeRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return apperr.Validationf("Menu type name cannot be empty")
		}

		menuType := models.MenuType{Name: body.Name, RestaurantID: restaurantID}
		if err := database.DB.Create(&menuType).Error; err != nil {
			return apperr.Internal("Could not create menu type")
		}
		return respond.Created(c, menuType, "Menu type created successfully")
	}
}

// GET /api/restaurant/inventory/menutypes
func ListMenuTypesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var menuTypes []models.MenuType
		if err := database.DB.
			Where("restaurant_id = ?", restaurantID).
			Order("name").
			Find(&menuTypes).Error; err != nil {
			return apperr.Internal("Could not list menu types")
		}
		return respond.OK(c, menuTypes)
	}
}

// POST /api/restaurant/inventory/menusubtype
func CreateMenuSubtypeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var body CreateMenuSubtypeRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return apperr.Validationf("Menu subtype name cannot be empty")
		}
		if body.CategoryType != "" &&
			body.CategoryType != models.ItemCategoryVeg &&
			body.CategoryType != models.ItemCategoryNonVeg {
			return apperr.Validationf("categorytype must be veg or non-veg")
		}

		var menuType models.MenuType
		if err := database.DB.
			Where("id = ? AND restaurant_id = ?", body.MenuTypeID, restaurantID).
			First(&menuType).Error; err != nil {
			return apperr.NotFoundf("Menu type not found")
		}

		subtype := models.MenuSubtype{
			Name:         body.Name,
			CategoryType: body.CategoryType,
			MenuTypeID:   menuType.ID,
		}
		if err := database.DB.Create(&subtype).Error; err != nil {
			return apperr.Internal("Could not create menu subtype")
		}
		return respond.Created(c, subtype, "Menu subtype created successfully")
	}
}

// GET /api/restaurant/inventory/menusubtype/:menutype_id
func ListMenuSubtypesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var menuType models.MenuType
		if err := database.DB.First(&menuType, "id = ?", c.Params("menutype_id")).Error; err != nil {
			return apperr.NotFoundf("Menu type not found")
		}

		var subtypes []models.MenuSubtype
		if err := database.DB.
			Where("menu_type_id = ?", menuType.ID).
			Order("name").
			Find(&subtypes).Error; err != nil {
			return apperr.Internal("Could not list menu subtypes")
		}
		return respond.OK(c, subtypes)
	}
}

// GET /api/restaurant/inventory/units
func ListUnitCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var units []models.UnitCategory
		if err := database.DB.Order("id").Find(&units).Error; err != nil {
			return apperr.Internal("Could not list unit categories")
		}
		return respond.OK(c, units)
	}
}

package inventory

import (
	"strings"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

type CreateInventoryRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	VideoLink         string `json:"video_link"`
	ItemImage         string `json:"item_image"`
	Category          string `json:"category"` // veg / non-veg / other / all
	MenuTypeID        uint   `json:"menu_type"`
	MenuSubtypeID     uint   `json:"menu_subtype"`
	UnitCategoryID    uint   `json:"unit_category"`
	TotalQuantity     int    `json:"total_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
	UnitPrice         int    `json:"unit_price"`
}

type InventoryResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	VideoLink         string `json:"video_link"`
	ItemImage         string `json:"item_image"`
	Category          string `json:"category"`
	MenuType          string `json:"menu_type"`
	MenuSubtype       string `json:"menu_subtype"`
	Unit              string `json:"unit"`
	TotalQuantity     int    `json:"total_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
	UnitPrice         int    `json:"unit_price"`
	CreatedAt         string `json:"created_at"`
}

func ToInventoryResponse(item *models.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:                item.ID,
		Name:              item.Name,
		Description:       item.Description,
		VideoLink:         item.VideoLink,
		ItemImage:         item.ItemImage,
		Category:          item.Category,
		MenuType:          item.MenuType.Name,
		MenuSubtype:       item.MenuSubtype.Name,
		Unit:              item.UnitCategory.Abbreviation,
		TotalQuantity:     item.TotalQuantity,
		AvailableQuantity: item.AvailableQuantity,
		UnitPrice:         item.UnitPrice,
		CreatedAt:         item.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func validCategory(category string) bool {
	switch category {
	case "", models.ItemCategoryVeg, models.ItemCategoryNonVeg,
		models.ItemCategoryOther, models.ItemCategoryAll:
		return true
	}
	return false
}

// POST /api/restaurant/inventory/create
func CreateInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var body CreateInventoryRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return apperr.Validationf("Item name cannot be empty")
		}
		if !validCategory(body.Category) {
			return apperr.Validationf("category must be one of veg, non-veg, other, all")
		}
		if body.TotalQuantity < 0 || body.AvailableQuantity < 0 || body.UnitPrice < 0 {
			return apperr.Validationf("Quantities and price cannot be negative")
		}
		if body.AvailableQuantity > body.TotalQuantity {
			return apperr.Validationf("available_quantity cannot exceed total_quantity")
		}

		var menuType models.MenuType
		if err := database.DB.
			Where("id = ? AND restaurant_id = ?", body.MenuTypeID, restaurantID).
			First(&menuType).Error; err != nil {
			return apperr.NotFoundf("Menu type not found")
		}
		var subtype models.MenuSubtype
		if err := database.DB.
			Where("id = ? AND menu_type_id = ?", body.MenuSubtypeID, menuType.ID).
			First(&subtype).Error; err != nil {
			return apperr.NotFoundf("Menu subtype not found")
		}
		var unit models.UnitCategory
		if err := database.DB.First(&unit, body.UnitCategoryID).Error; err != nil {
			return apperr.NotFoundf("Unit category not found")
		}

		item := models.Inventory{
			Name:              body.Name,
			RestaurantID:      restaurantID,
			Description:       body.Description,
			VideoLink:         body.VideoLink,
			ItemImage:         body.ItemImage,
			Category:          body.Category,
			MenuTypeID:        menuType.ID,
			MenuSubtypeID:     subtype.ID,
			UnitCategoryID:    unit.ID,
			TotalQuantity:     body.TotalQuantity,
			AvailableQuantity: body.AvailableQuantity,
			UnitPrice:         body.UnitPrice,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return apperr.Internal("Could not create inventory")
		}

		item.MenuType = menuType
		item.MenuSubtype = subtype
		item.UnitCategory = unit
		return respond.Created(c, ToInventoryResponse(&item), "Inventory created successfully")
	}
}

func listInventory(c *fiber.Ctx, restaurantID uint) ([]InventoryResponse, error) {
	q := database.DB.
		Preload("MenuType").Preload("MenuSubtype").Preload("UnitCategory").
		Where("inventories.restaurant_id = ?", restaurantID)

	if menuType := c.Query("menu_type"); menuType != "" {
		q = q.Joins("JOIN menu_types ON menu_types.id = inventories.menu_type_id").
			Where("menu_types.name = ?", menuType)
	}
	if subtype := c.Query("subtype"); subtype != "" {
		q = q.Joins("JOIN menu_subtypes ON menu_subtypes.id = inventories.menu_subtype_id").
			Where("menu_subtypes.name = ?", subtype)
	}

	var items []models.Inventory
	if err := q.Order("inventories.created_at DESC").Find(&items).Error; err != nil {
		return nil, apperr.Internal("Could not list inventory")
	}
	if len(items) == 0 {
		return nil, apperr.NotFoundf("Inventory not found")
	}

	res := make([]InventoryResponse, 0, len(items))
	for i := range items {
		res = append(res, ToInventoryResponse(&items[i]))
	}
	return res, nil
}

// GET /api/restaurant/inventory/list: caller's own restaurant,
// optionally filtered by menu type / subtype name.
func ListInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}
		res, err := listInventory(c, restaurantID)
		if err != nil {
			return err
		}
		return respond.OK(c, res)
	}
}

// GET /api/restaurant/inventory/list/:restaurant_id/:table_id: public
// menu listing used by the table QR flow.
func PublicInventoryListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := c.ParamsInt("restaurant_id")
		if err != nil || restaurantID <= 0 {
			return apperr.Validationf("Invalid restaurant id")
		}
		tableID, err := c.ParamsInt("table_id")
		if err != nil || tableID <= 0 {
			return apperr.Validationf("Invalid table id")
		}

		res, lerr := listInventory(c, uint(restaurantID))
		if lerr != nil {
			return lerr
		}
		return respond.JSON(c, fiber.StatusOK, fiber.Map{
			"items":    res,
			"table_id": tableID,
		}, "")
	}
}

// GET /api/restaurant/inventory/detail/:id
func InventoryDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.Inventory
		if err := database.DB.
			Preload("MenuType").Preload("MenuSubtype").Preload("UnitCategory").
			First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return apperr.NotFoundf("Inventory not found")
		}
		return respond.OK(c, ToInventoryResponse(&item))
	}
}

func loadOwnInventory(c *fiber.Ctx) (*models.Inventory, error) {
	restaurantID, err := auth.CurrentRestaurantID(c)
	if err != nil {
		return nil, err
	}

	var item models.Inventory
	if err := database.DB.
		Preload("MenuType").Preload("MenuSubtype").Preload("UnitCategory").
		First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return nil, apperr.NotFoundf("Inventory not found")
	}
	if item.RestaurantID != restaurantID {
		return nil, apperr.Forbidden("You are not authorized to perform this action")
	}
	return &item, nil
}

type UpdateInventoryRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	VideoLink         *string `json:"video_link"`
	ItemImage         *string `json:"item_image"`
	Category          *string `json:"category"`
	TotalQuantity     *int    `json:"total_quantity"`
	AvailableQuantity *int    `json:"available_quantity"`
	UnitPrice         *int    `json:"unit_price"`
}

// PUT /api/restaurant/inventory/update/:id
func UpdateInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := loadOwnInventory(c)
		if err != nil {
			return err
		}

		var body UpdateInventoryRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return apperr.Validationf("Item name cannot be empty")
			}
			item.Name = name
		}
		if body.Description != nil {
			item.Description = *body.Description
		}
		if body.VideoLink != nil {
			item.VideoLink = *body.VideoLink
		}
		if body.ItemImage != nil {
			item.ItemImage = *body.ItemImage
		}
		if body.Category != nil {
			if !validCategory(*body.Category) {
				return apperr.Validationf("category must be one of veg, non-veg, other, all")
			}
			item.Category = *body.Category
		}
		if body.TotalQuantity != nil {
			item.TotalQuantity = *body.TotalQuantity
		}
		if body.AvailableQuantity != nil {
			item.AvailableQuantity = *body.AvailableQuantity
		}
		if body.UnitPrice != nil {
			item.UnitPrice = *body.UnitPrice
		}

		if item.TotalQuantity < 0 || item.AvailableQuantity < 0 || item.UnitPrice < 0 {
			return apperr.Validationf("Quantities and price cannot be negative")
		}
		if item.AvailableQuantity > item.TotalQuantity {
			return apperr.Validationf("available_quantity cannot exceed total_quantity")
		}

		if err := database.DB.Save(item).Error; err != nil {
			return apperr.Internal("Could not update inventory")
		}
		return respond.OK(c, ToInventoryResponse(item))
	}
}

// DELETE /api/restaurant/inventory/delete/:id
func DeleteInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := loadOwnInventory(c)
		if err != nil {
			return err
		}

		if err := database.DB.Delete(item).Error; err != nil {
			return apperr.Internal("Could not delete inventory")
		}
		return respond.Message(c, fiber.StatusOK, "Inventory deleted successfully")
	}
}

package order

import (
	"time"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

// Only these columns may be sorted on; anything else is ignored.
var sortColumns = map[string]string{
	"id":           "orders.id",
	"table_no":     "tables.table_number",
	"phone_number": "customers.phone_number",
	"order_status": "orders.order_status",
	"created_at":   "orders.created_at",
}

type Pagination struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// GET /api/order/list
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		page := c.QueryInt("page", 1)
		pageSize := c.QueryInt("page_size", 10)
		if page < 1 {
			return apperr.Validationf("Invalid page number: %d", page)
		}
		if pageSize < 1 || pageSize > 100 {
			return apperr.Validationf("page_size must be between 1 and 100")
		}

		q := database.DB.Model(&models.Order{}).
			Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
			Joins("LEFT JOIN tables ON tables.id = orders.table_id").
			Where("orders.restaurant_id = ?", restaurantID)

		if orderType := c.Query("order_type"); orderType != "" {
			q = q.Where("orders.order_type = ?", orderType)
		}
		if orderStatus := c.Query("order_status"); orderStatus != "" {
			q = q.Where("orders.order_status = ?", orderStatus)
		}
		if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
			q = q.Where("orders.payment_status = ?", paymentStatus)
		}

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			q = q.Where(
				"CAST(orders.id AS TEXT) LIKE ? OR CAST(tables.table_number AS TEXT) LIKE ? OR "+
					"customers.phone_number LIKE ? OR orders.order_status LIKE ? OR "+
					"CAST(orders.created_at AS TEXT) LIKE ?",
				like, like, like, like, like,
			)
		}

		now := time.Now()
		todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		switch c.Query("time_filter") {
		case "recent":
			q = q.Where("orders.created_at >= ?", todayStart)
		case "yesterday":
			q = q.Where("orders.created_at >= ? AND orders.created_at < ?",
				todayStart.AddDate(0, 0, -1), todayStart)
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return apperr.Internal("Could not count orders")
		}

		totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
		if total > 0 && page > totalPages {
			return apperr.Validationf("Page %d is out of range", page)
		}

		// Selecting orders.* must wait until after Count: counting a
		// qualified star select fails, and the joined tables would
		// otherwise leak duplicate columns into the scan.
		q = q.Select("orders.*")

		if col, ok := sortColumns[c.Query("sort_by")]; ok {
			dir := "ASC"
			if c.Query("sort_order") == "desc" {
				dir = "DESC"
			}
			q = q.Order(col + " " + dir)
		}

		var orders []models.Order
		if err := q.
			Preload("Customer").
			Preload("Table").
			Preload("OrderItems.Inventory.MenuType").
			Preload("OrderItems.Inventory.MenuSubtype").
			Preload("OrderItems.Inventory.UnitCategory").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&orders).Error; err != nil {
			return apperr.Internal("Could not list orders")
		}

		res := make([]fiber.Map, 0, len(orders))
		for i := range orders {
			res = append(res, fiber.Map{
				"order":    toOrderResponse(&orders[i]),
				"customer": toCustomerResponse(orders[i].Customer),
			})
		}

		return respond.OK(c, fiber.Map{
			"orders": res,
			"pagination": Pagination{
				TotalItems:  total,
				TotalPages:  totalPages,
				CurrentPage: page,
				PageSize:    pageSize,
			},
		})
	}
}

package order

import (
	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/events"
	"hotelapp-backend/internal/inventory"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OrderItemResponse struct {
	ID        uint                         `json:"id"`
	Quantity  int                          `json:"quantity"`
	Inventory *inventory.InventoryResponse `json:"inventory"`
}

type CustomerResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	OrderType     string              `json:"order_type"`
	OrderStatus   string              `json:"order_status"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	TableNumber   *int                `json:"table_no"`
	SessionID     string              `json:"session_id"`
	OrderItems    []OrderItemResponse `json:"order_items"`
	CreatedAt     string              `json:"created_at"`
}

func toCustomerResponse(cust *models.Customer) *CustomerResponse {
	if cust == nil {
		return nil
	}
	return &CustomerResponse{
		ID:          cust.ID,
		Name:        cust.Name,
		PhoneNumber: cust.PhoneNumber,
		Email:       cust.Email,
		Address:     cust.Address,
	}
}

func toOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.OrderItems))
	for i := range o.OrderItems {
		item := OrderItemResponse{
			ID:       o.OrderItems[i].ID,
			Quantity: o.OrderItems[i].Quantity,
		}
		if o.OrderItems[i].Inventory != nil {
			inv := inventory.ToInventoryResponse(o.OrderItems[i].Inventory)
			item.Inventory = &inv
		}
		items = append(items, item)
	}

	var tableNumber *int
	if o.Table != nil {
		tableNumber = &o.Table.TableNumber
	}

	return OrderResponse{
		ID:            o.ID,
		OrderType:     o.OrderType,
		OrderStatus:   o.OrderStatus,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		TableNumber:   tableNumber,
		SessionID:     o.SessionID,
		OrderItems:    items,
		CreatedAt:     o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/order/create
func CreateOrderHandler(publisher events.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var body CreateOrderInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}

		created, err := CreateOrder(database.DB, restaurantID, &body)
		if err != nil {
			return err
		}

		// Event delivery never fails the order.
		if err := publisher.PublishOrderCreated(events.OrderCreated{
			OrderID:      created.ID,
			RestaurantID: created.RestaurantID,
			OrderType:    created.OrderType,
			ItemCount:    len(created.OrderItems),
			CreatedAt:    created.CreatedAt,
		}); err != nil {
			logrus.Errorf("order %d created but event publish failed: %v", created.ID, err)
		}

		return respond.Created(c, fiber.Map{
			"order":    toOrderResponse(created),
			"customer": toCustomerResponse(created.Customer),
		}, "")
	}
}

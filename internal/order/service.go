package order

import (
	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/models"

	"gorm.io/gorm"
)

type OrderItemInput struct {
	InventoryID uint `json:"inventory_id"`
	Quantity    int  `json:"quantity"`
}

type CustomerInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

type CreateOrderInput struct {
	OrderType     string           `json:"order_type"`
	TableNo       *int             `json:"table_no"`
	OrderItems    []OrderItemInput `json:"order_items"`
	CustomerData  *CustomerInput   `json:"customer_data"`
	PaymentMethod string           `json:"payment_method"`
	SessionID     string           `json:"session_id"`
}

// Validate checks the payload shape and the per-channel preconditions.
// Nothing is persisted until it passes.
func (in *CreateOrderInput) Validate() error {
	switch in.OrderType {
	case models.OrderTypeDineIn, models.OrderTypeTakeAway, models.OrderTypeHomeDelivery:
	default:
		return apperr.Validationf("order_type must be one of dine-in, take-away, home-delivery")
	}

	if len(in.OrderItems) == 0 {
		return apperr.Validationf("order_items cannot be empty")
	}
	for _, line := range in.OrderItems {
		if line.InventoryID == 0 {
			return apperr.Validationf("inventory_id is required for every order item")
		}
		if line.Quantity <= 0 {
			return apperr.Validationf("quantity must be greater than zero")
		}
	}

	if in.CustomerData == nil {
		return apperr.Validationf("Customer data is required for this order")
	}
	if in.CustomerData.Name == "" || in.CustomerData.PhoneNumber == "" {
		return apperr.Validationf("Customer name and phone number are required")
	}

	if in.OrderType == models.OrderTypeDineIn && in.TableNo == nil {
		return apperr.Validationf("Table no is required for this order")
	}
	if in.OrderType == models.OrderTypeHomeDelivery && in.CustomerData.Address == "" {
		return apperr.Validationf("Customer address is required for this order")
	}

	switch in.PaymentMethod {
	case "", models.PaymentMethodCounter, models.PaymentMethodOnline:
	default:
		return apperr.Validationf("payment_method must be counter or online")
	}
	return nil
}

// CreateOrder persists Customer + Order + OrderItems and decrements
// stock inside one transaction. The check-then-decrement runs as a
// single conditional UPDATE, so concurrent orders cannot oversell;
// any failure rolls everything back.
func CreateOrder(db *gorm.DB, restaurantID uint, in *CreateOrderInput) (*models.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var tableID *uint
		if in.OrderType == models.OrderTypeDineIn {
			var table models.Table
			if err := tx.
				Where("restaurant_id = ? AND table_number = ?", restaurantID, *in.TableNo).
				First(&table).Error; err != nil {
				return apperr.NotFoundf("Table %d not found", *in.TableNo)
			}
			tableID = &table.ID
		}

		customer := models.Customer{
			RestaurantID: restaurantID,
			Name:         in.CustomerData.Name,
			PhoneNumber:  in.CustomerData.PhoneNumber,
			Email:        in.CustomerData.Email,
			Address:      in.CustomerData.Address,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		paymentStatus := ""
		if in.PaymentMethod == models.PaymentMethodCounter {
			paymentStatus = models.PaymentStatusPending
		}

		order = models.Order{
			RestaurantID:  restaurantID,
			CustomerID:    &customer.ID,
			TableID:       tableID,
			OrderType:     in.OrderType,
			OrderStatus:   models.OrderStatusPending, // system-assigned, never client input
			PaymentMethod: in.PaymentMethod,
			PaymentStatus: paymentStatus,
			SessionID:     in.SessionID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range in.OrderItems {
			res := tx.Model(&models.Inventory{}).
				Where("id = ? AND restaurant_id = ? AND available_quantity >= ?",
					line.InventoryID, restaurantID, line.Quantity).
				UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Distinguish a missing item from insufficient stock.
				var count int64
				if err := tx.Model(&models.Inventory{}).
					Where("id = ? AND restaurant_id = ?", line.InventoryID, restaurantID).
					Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return apperr.Validationf("Product %d not found in inventory", line.InventoryID)
				}
				return apperr.Conflictf("Insufficient quantity for product %d", line.InventoryID)
			}

			invID := line.InventoryID
			item := models.OrderItem{
				RestaurantID: &restaurantID,
				InventoryID:  &invID,
				Quantity:     line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			if err := tx.Model(&order).Association("OrderItems").Append(&item); err != nil {
				return err
			}
		}

		return tx.
			Preload("Customer").
			Preload("Table").
			Preload("OrderItems.Inventory.MenuType").
			Preload("OrderItems.Inventory.MenuSubtype").
			Preload("OrderItems.Inventory.UnitCategory").
			First(&order, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

package models

import "time"

const (
	OrderTypeDineIn       = "dine-in"
	OrderTypeTakeAway     = "take-away"
	OrderTypeHomeDelivery = "home-delivery"

	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	PaymentMethodCounter = "counter"
	PaymentMethodOnline  = "online"

	PaymentStatusPending = "pending"
)

// Customer rows are created fresh with every order; there is no
// dedup or merge across orders.
type Customer struct {
	ID           uint   `gorm:"primaryKey"`
	RestaurantID uint   `gorm:"not null;index"`
	Name         string `gorm:"size:200;not null"`
	PhoneNumber  string `gorm:"size:20;not null"`
	Email        string `gorm:"size:100"`
	Address      string `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// OrderItem is immutable after creation and belongs to exactly one order.
type OrderItem struct {
	ID           uint  `gorm:"primaryKey"`
	RestaurantID *uint `gorm:"index"`
	InventoryID  *uint `gorm:"index"`
	Inventory    *Inventory
	Quantity     int `gorm:"not null"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

type Order struct {
	ID           uint `gorm:"primaryKey"`
	RestaurantID uint `gorm:"not null;index"`
	CustomerID   *uint
	Customer     *Customer
	TableID      *uint // set for dine-in only
	Table        *Table

	OrderType     string `gorm:"size:20;not null"`
	OrderStatus   string `gorm:"size:100;not null"`
	PaymentID     string `gorm:"size:100"`
	PaymentMethod string `gorm:"size:20"`
	PaymentStatus string `gorm:"size:50"`
	SessionID     string `gorm:"size:100"`

	OrderItems []OrderItem `gorm:"many2many:order_order_items"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

package models

import "time"

const (
	ItemCategoryVeg    = "veg"
	ItemCategoryNonVeg = "non-veg"
	ItemCategoryOther  = "other"
	ItemCategoryAll    = "all"
)

// Inventory is a sellable menu item with live stock.
// AvailableQuantity is mutated only by the order workflow (decrement)
// or an explicit owner update, and never exceeds TotalQuantity.
type Inventory struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	RestaurantID uint   `gorm:"not null;index"`
	Description  string `gorm:"size:200"`
	VideoLink    string `gorm:"size:200"`
	ItemImage    string `gorm:"size:200"`
	Category     string `gorm:"size:20"` // veg / non-veg / other / all

	MenuTypeID     uint `gorm:"not null"`
	MenuType       MenuType
	MenuSubtypeID  uint `gorm:"not null"`
	MenuSubtype    MenuSubtype
	UnitCategoryID uint `gorm:"not null"`
	UnitCategory   UnitCategory

	TotalQuantity     int `gorm:"not null"`
	AvailableQuantity int `gorm:"not null"`
	UnitPrice         int `gorm:"not null"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

package models

import "time"

type Table struct {
	ID           uint `gorm:"primaryKey"`
	RestaurantID uint `gorm:"not null;uniqueIndex:idx_restaurant_tablenumber"`
	TableNumber  int  `gorm:"not null;uniqueIndex:idx_restaurant_tablenumber"`
	Capacity     int  `gorm:"not null"`
	IsOccupied   bool `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableQR holds the generated QR image for a table. At most one active
// QR exists per table; regeneration is refused while one is active.
type TableQR struct {
	ID        uint   `gorm:"primaryKey"`
	TableID   uint   `gorm:"not null;index"`
	Table     Table
	QRLink    string `gorm:"size:255;not null"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

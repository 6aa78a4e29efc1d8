package models

import "time"

type MenuType struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:50;not null"`
	RestaurantID uint   `gorm:"not null;index"`

	MenuSubtypes []MenuSubtype `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type MenuSubtype struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:50;not null"`
	CategoryType string `gorm:"size:20"` // veg / non-veg
	MenuTypeID   uint   `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UnitCategory is a global measurement-unit lookup, seeded at startup.
type UnitCategory struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:50;uniqueIndex;not null"`
	Abbreviation string `gorm:"size:5;not null"` // ml, g, pcs, plate, cup
}

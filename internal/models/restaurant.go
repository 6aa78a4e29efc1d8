package models

import "time"

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:300;not null"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Restaurant struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:300;not null"`
	Description string `gorm:"size:500"`
	// "HH:MM", 24h
	OpeningTime string `gorm:"size:5;not null"`
	ClosingTime string `gorm:"size:5;not null"`
	PhoneNumber string `gorm:"size:20;not null"`
	Address     string `gorm:"type:text"`
	Logo        string `gorm:"size:255"`
	CategoryID  uint   `gorm:"not null"`
	Category    Category

	Days        []Day       `gorm:"constraint:OnDelete:CASCADE"`
	Tables      []Table     `gorm:"constraint:OnDelete:CASCADE"`
	MenuTypes   []MenuType  `gorm:"constraint:OnDelete:CASCADE"`
	Inventories []Inventory `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// Day marks whether the restaurant opens on a given weekday.
// IsOpen carries no column default: GORM drops zero-valued fields with
// a default tag from the INSERT, which would turn a closed day open.
type Day struct {
	ID           uint   `gorm:"primaryKey"`
	RestaurantID uint   `gorm:"not null;uniqueIndex:idx_restaurant_weekday"`
	Weekday      string `gorm:"size:10;not null;uniqueIndex:idx_restaurant_weekday"`
	IsOpen       bool   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

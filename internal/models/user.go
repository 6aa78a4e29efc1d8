package models

import "time"

type UserRole string

const (
	RoleSuperAdmin   UserRole = "superadmin"
	RoleRestaurant   UserRole = "restaurant"
	RoleKitchenStaff UserRole = "kitchen_staff"
	RoleUser         UserRole = "user"
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	FirstName    string   `gorm:"size:100;not null"`
	LastName     string   `gorm:"size:100"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	PhoneNumber  string   `gorm:"size:15"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null;default:user"`
	// No column default: a default tag makes GORM skip the field when
	// it is false, so accounts could never be created inactive.
	IsActive bool `gorm:"not null"`

	// Required for restaurant and kitchen_staff roles
	RestaurantID *uint
	Restaurant   *Restaurant

	// Single-use reset token; both fields cleared on redemption
	PasswordResetToken *string `gorm:"size:36;uniqueIndex"`
	TokenCreatedAt     *time.Time

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

package models_test

import (
	"testing"

	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Boolean flags must round-trip false at creation time; a column
// default would make GORM drop the field from the INSERT.
func TestBooleanFieldsPersistFalseOnCreate(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)

	day := models.Day{RestaurantID: f.Restaurant.ID, Weekday: "monday", IsOpen: false}
	require.NoError(t, db.Create(&day).Error)

	var storedDay models.Day
	require.NoError(t, db.First(&storedDay, day.ID).Error)
	assert.False(t, storedDay.IsOpen)

	user := models.User{
		FirstName:    "Priya",
		Email:        "priya@example.com",
		PasswordHash: "x",
		Role:         models.RoleUser,
		IsActive:     false,
	}
	require.NoError(t, db.Create(&user).Error)

	var storedUser models.User
	require.NoError(t, db.First(&storedUser, user.ID).Error)
	assert.False(t, storedUser.IsActive)

	qr := models.TableQR{TableID: f.Table.ID, QRLink: "qr/table-1.png", IsActive: false}
	require.NoError(t, db.Create(&qr).Error)

	var storedQR models.TableQR
	require.NoError(t, db.First(&storedQR, qr.ID).Error)
	assert.False(t, storedQR.IsActive)
}

package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminApp() *fiber.App {
	app := testutil.NewApp()
	app.Post("/api/restaurant/create", CreateRestaurantHandler())
	app.Put("/api/restaurant/update/:id", UpdateRestaurantHandler())
	app.Delete("/api/restaurant/delete/:id", DeleteRestaurantHandler())
	app.Get("/api/restaurant/list", ListRestaurantsHandler())
	app.Get("/api/restaurant/detail/:id", RestaurantDetailHandler())
	app.Post("/api/restaurant/category", CreateCategoryHandler())
	app.Delete("/api/restaurant/category/:id", DeleteCategoryHandler())
	return app
}

func restaurantPayload(categoryID uint) fiber.Map {
	return fiber.Map{
		"name":                   "Harbor House",
		"opening_time":           "09:00",
		"closing_time":           "22:00",
		"phone_number":           "9876543210",
		"address":                "12 Pier Road",
		"restaurant_category_id": categoryID,
		"closed_days":            []string{"Monday"},
	}
}

func TestValidateOperatingHours(t *testing.T) {
	assert.NoError(t, validateOperatingHours("09:00", "22:00"))
	assert.EqualError(t, validateOperatingHours("22:00", "09:00"),
		"Closing time should be after opening time")
	assert.EqualError(t, validateOperatingHours("12:00", "12:00"),
		"Closing time should be after opening time")
	assert.EqualError(t, validateOperatingHours("9 am", "22:00"),
		"opening_time must be in HH:MM format")
	assert.EqualError(t, validateOperatingHours("09:00", "25:00"),
		"closing_time must be in HH:MM format")
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, validatePhone("9876543210"))
	assert.EqualError(t, validatePhone("12345"),
		"Phone number must be exactly 10 digits long")
	assert.EqualError(t, validatePhone("987654321x"),
		"Phone number must contain only digits")
}

func TestCreateRestaurantSeedsWeekdays(t *testing.T) {
	db := testutil.OpenDB(t)
	cat := models.Category{Name: "Fine Dining"}
	require.NoError(t, db.Create(&cat).Error)

	app := newAdminApp()
	status, env := testutil.Request(t, app, http.MethodPost,
		"/api/restaurant/create", restaurantPayload(cat.ID))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Restaurant created successfully", env.Message)

	var detail RestaurantResponse
	require.NoError(t, json.Unmarshal(env.Detail, &detail))
	assert.Equal(t, "Fine Dining", detail.Category)
	require.Len(t, detail.OpenDays, 7)
	assert.False(t, detail.OpenDays["monday"])
	assert.True(t, detail.OpenDays["tuesday"])

	var days int64
	require.NoError(t, db.Model(&models.Day{}).Count(&days).Error)
	assert.EqualValues(t, 7, days)
}

func TestCreateRestaurantUnknownCategory(t *testing.T) {
	testutil.OpenDB(t)
	app := newAdminApp()

	status, env := testutil.Request(t, app, http.MethodPost,
		"/api/restaurant/create", restaurantPayload(42))
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Restaurant category not found", env.Message)
}

func TestCreateRestaurantRejectsBadHours(t *testing.T) {
	db := testutil.OpenDB(t)
	cat := models.Category{Name: "Fine Dining"}
	require.NoError(t, db.Create(&cat).Error)

	app := newAdminApp()
	payload := restaurantPayload(cat.ID)
	payload["closing_time"] = "08:00"

	status, env := testutil.Request(t, app, http.MethodPost,
		"/api/restaurant/create", payload)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Closing time should be after opening time", env.Message)
}

func TestUpdateRestaurantPartial(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)
	app := newAdminApp()

	target := fmt.Sprintf("/api/restaurant/update/%d", f.Restaurant.ID)

	status, env := testutil.Request(t, app, http.MethodPut, target,
		fiber.Map{"description": "Seafood by the pier"})
	require.Equal(t, http.StatusOK, status)

	var detail RestaurantResponse
	require.NoError(t, json.Unmarshal(env.Detail, &detail))
	assert.Equal(t, "Seafood by the pier", detail.Description)
	assert.Equal(t, f.Restaurant.Name, detail.Name)

	// Changing one bound revalidates the pair against stored state.
	status, env = testutil.Request(t, app, http.MethodPut, target,
		fiber.Map{"closing_time": "08:00"})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Closing time should be after opening time", env.Message)
}

func TestDeleteRestaurantRemovesOwnedRows(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)
	app := newAdminApp()

	status, env := testutil.Request(t, app, http.MethodDelete,
		fmt.Sprintf("/api/restaurant/delete/%d", f.Restaurant.ID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Restaurant deleted successfully", env.Message)

	for _, model := range []any{
		&models.Restaurant{}, &models.Table{}, &models.MenuType{},
		&models.MenuSubtype{}, &models.Inventory{},
	} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Zero(t, n, "%T rows left behind", model)
	}

	status, _ = testutil.Request(t, app, http.MethodDelete,
		fmt.Sprintf("/api/restaurant/delete/%d", f.Restaurant.ID), nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestDeleteCategoryInUse(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)
	app := newAdminApp()

	status, env := testutil.Request(t, app, http.MethodDelete,
		fmt.Sprintf("/api/restaurant/category/%d", f.Category.ID), nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Category is still used by 1 restaurant(s)", env.Message)

	empty := models.Category{Name: "Pop-up"}
	require.NoError(t, db.Create(&empty).Error)

	status, env = testutil.Request(t, app, http.MethodDelete,
		fmt.Sprintf("/api/restaurant/category/%d", empty.ID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Category deleted successfully", env.Message)
}

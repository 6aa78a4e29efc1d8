package order

import (
	"encoding/json"
	"net/http"
	"testing"

	"hotelapp-backend/internal/events"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderApp(restaurantID uint) *fiber.App {
	app := testutil.NewApp()
	app.Post("/api/order/create", testutil.AsRestaurant(restaurantID), CreateOrderHandler(events.NopPublisher{}))
	app.Get("/api/order/list", testutil.AsRestaurant(restaurantID), ListOrdersHandler())
	return app
}

type orderListDetail struct {
	Orders []struct {
		Order    OrderResponse     `json:"order"`
		Customer *CustomerResponse `json:"customer"`
	} `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

func decodeOrderList(t *testing.T, env testutil.Envelope) orderListDetail {
	t.Helper()
	var detail orderListDetail
	require.NoError(t, json.Unmarshal(env.Detail, &detail))
	return detail
}

func seedOrders(t *testing.T, db *gorm.DB, f *testutil.Fixture, n int) []*models.Order {
	t.Helper()
	orders := make([]*models.Order, 0, n)
	for i := 0; i < n; i++ {
		created, err := CreateOrder(db, f.Restaurant.ID, takeAwayOrder(f.Inventory.ID, 1))
		require.NoError(t, err)
		orders = append(orders, created)
	}
	return orders
}

func TestCreateOrderHandlerReturnsOrderAndCustomer(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)
	app := newOrderApp(f.Restaurant.ID)

	status, env := testutil.Request(t, app, http.MethodPost, "/api/order/create", fiber.Map{
		"order_type": models.OrderTypeTakeAway,
		"order_items": []fiber.Map{
			{"inventory_id": f.Inventory.ID, "quantity": 2},
		},
		"customer_data":  fiber.Map{"name": "Asha Rao", "phone_number": "9876501234"},
		"payment_method": models.PaymentMethodCounter,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.False(t, env.Error)

	var detail struct {
		Order    OrderResponse     `json:"order"`
		Customer *CustomerResponse `json:"customer"`
	}
	require.NoError(t, json.Unmarshal(env.Detail, &detail))

	assert.Equal(t, models.OrderStatusPending, detail.Order.OrderStatus)
	assert.Equal(t, models.PaymentStatusPending, detail.Order.PaymentStatus)
	require.Len(t, detail.Order.OrderItems, 1)
	require.NotNil(t, detail.Order.OrderItems[0].Inventory)
	assert.Equal(t, 3, detail.Order.OrderItems[0].Inventory.AvailableQuantity)
	require.NotNil(t, detail.Customer)
	assert.Equal(t, "Asha Rao", detail.Customer.Name)
}

func TestCreateOrderHandlerRejectsDineInWithoutTable(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)
	app := newOrderApp(f.Restaurant.ID)

	status, env := testutil.Request(t, app, http.MethodPost, "/api/order/create", fiber.Map{
		"order_type": models.OrderTypeDineIn,
		"order_items": []fiber.Map{
			{"inventory_id": f.Inventory.ID, "quantity": 1},
		},
		"customer_data": fiber.Map{"name": "Asha Rao", "phone_number": "9876501234"},
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.True(t, env.Error)
	assert.Equal(t, "Table no is required for this order", env.Message)
}

func TestListOrdersPagination(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)

	// Enough stock for every order in this test.
	require.NoError(t, db.Model(&models.Inventory{}).
		Where("id = ?", f.Inventory.ID).
		Update("available_quantity", 10).Error)
	seedOrders(t, db, f, 5)

	app := newOrderApp(f.Restaurant.ID)

	status, env := testutil.Request(t, app, http.MethodGet, "/api/order/list?page=1&page_size=2", nil)
	require.Equal(t, http.StatusOK, status)

	detail := decodeOrderList(t, env)
	assert.Len(t, detail.Orders, 2)
	assert.EqualValues(t, 5, detail.Pagination.TotalItems)
	assert.Equal(t, 3, detail.Pagination.TotalPages)
	assert.Equal(t, 1, detail.Pagination.CurrentPage)
	assert.Equal(t, 2, detail.Pagination.PageSize)

	status, env = testutil.Request(t, app, http.MethodGet, "/api/order/list?page=3&page_size=2", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeOrderList(t, env).Orders, 1)
}

func TestListOrdersInvalidPage(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)
	seedOrders(t, db, f, 2)

	app := newOrderApp(f.Restaurant.ID)

	status, env := testutil.Request(t, app, http.MethodGet, "/api/order/list?page=0", nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid page number: 0", env.Message)

	status, env = testutil.Request(t, app, http.MethodGet, "/api/order/list?page=9", nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Page 9 is out of range", env.Message)

	status, _ = testutil.Request(t, app, http.MethodGet, "/api/order/list?page_size=500", nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestListOrdersFilterByStatus(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)
	orders := seedOrders(t, db, f, 3)

	require.NoError(t, db.Model(&models.Order{}).
		Where("id = ?", orders[0].ID).
		Update("order_status", models.OrderStatusConfirmed).Error)

	app := newOrderApp(f.Restaurant.ID)

	status, env := testutil.Request(t, app, http.MethodGet,
		"/api/order/list?order_status=confirmed", nil)
	require.Equal(t, http.StatusOK, status)

	detail := decodeOrderList(t, env)
	require.Len(t, detail.Orders, 1)
	assert.Equal(t, orders[0].ID, detail.Orders[0].Order.ID)
	assert.Equal(t, models.OrderStatusConfirmed, detail.Orders[0].Order.OrderStatus)
}

func TestListOrdersScopedToOwnRestaurant(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)
	seedOrders(t, db, f, 2)

	app := newOrderApp(f.Restaurant.ID + 1)

	status, env := testutil.Request(t, app, http.MethodGet, "/api/order/list", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decodeOrderList(t, env).Orders)
}

func TestListOrdersSortDescending(t *testing.T) {
	db := testutil.OpenDB(t)
	f := testutil.SeedRestaurant(t, db)
	seedOrders(t, db, f, 4)

	app := newOrderApp(f.Restaurant.ID)

	status, env := testutil.Request(t, app, http.MethodGet,
		"/api/order/list?sort_by=id&sort_order=desc", nil)
	require.Equal(t, http.StatusOK, status)

	detail := decodeOrderList(t, env)
	require.Len(t, detail.Orders, 4)
	for i := 1; i < len(detail.Orders); i++ {
		assert.Greater(t, detail.Orders[i-1].Order.ID, detail.Orders[i].Order.ID)
	}

	status, env = testutil.Request(t, app, http.MethodGet,
		"/api/order/list?sort_by=created_at&sort_order=desc", nil)
	require.Equal(t, http.StatusOK, status)

	detail = decodeOrderList(t, env)
	require.Len(t, detail.Orders, 4)
	for i := 1; i < len(detail.Orders); i++ {
		assert.GreaterOrEqual(t, detail.Orders[i-1].Order.CreatedAt, detail.Orders[i].Order.CreatedAt)
	}

	// Unknown sort columns are ignored rather than interpolated.
	status, _ = testutil.Request(t, app, http.MethodGet,
		"/api/order/list?sort_by=password_hash;drop", nil)
	require.Equal(t, http.StatusOK, status)
}

package main

import (
	"strings"

	"hotelapp-backend/internal/account"
	"hotelapp-backend/internal/admin"
	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/config"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/events"
	"hotelapp-backend/internal/inventory"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/order"
	"hotelapp-backend/internal/respond"
	"hotelapp-backend/internal/restaurant"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	mailer := auth.NewMailer(cfg)
	publisher := events.NewPublisher(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: respond.ErrorHandler,
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public account routes
	api.Post("/account/register-super-admin", auth.RegisterSuperAdminHandler())
	api.Post("/account/login", auth.LoginHandler(cfg))
	api.Post("/account/password/forgot", auth.ForgotPasswordHandler(cfg, mailer))
	api.Post("/account/password/change/:token", auth.ResetPasswordHandler())

	// Public menu browsing (table QR flow)
	api.Get("/restaurant/inventory/list/:restaurant_id/:table_id", inventory.PublicInventoryListHandler())
	api.Get("/restaurant/inventory/detail/:id", inventory.InventoryDetailHandler())

	// Everything below requires a valid token. Role checks are attached
	// per route because superadmin and owner endpoints share prefixes.
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	superadminOnly := auth.RequireRole(models.RoleSuperAdmin)
	ownerOnly := auth.RequireRole(models.RoleRestaurant)

	protected.Get("/account/me", auth.MeHandler())

	// Superadmin: users, categories, restaurants
	protected.Get("/account/list", superadminOnly, account.ListUsersHandler())
	protected.Post("/account/register-owner", superadminOnly, account.RegisterOwnerHandler())

	protected.Post("/restaurant/category", superadminOnly, admin.CreateCategoryHandler())
	protected.Put("/restaurant/category/:id", superadminOnly, admin.UpdateCategoryHandler())
	protected.Delete("/restaurant/category/:id", superadminOnly, admin.DeleteCategoryHandler())

	protected.Post("/restaurant/create", superadminOnly, admin.CreateRestaurantHandler())
	protected.Put("/restaurant/update/:id", superadminOnly, admin.UpdateRestaurantHandler())
	protected.Delete("/restaurant/delete/:id", superadminOnly, admin.DeleteRestaurantHandler())

	protected.Get("/restaurant/category/list", admin.ListCategoriesHandler())
	protected.Get("/restaurant/list", admin.ListRestaurantsHandler())
	protected.Get("/restaurant/detail/:id", admin.RestaurantDetailHandler())

	// Restaurant owner
	protected.Put("/restaurant/update/own/profile", ownerOnly, admin.UpdateOwnRestaurantHandler())

	protected.Post("/restaurant/createtable", ownerOnly, restaurant.CreateTableHandler())
	protected.Get("/restaurant/tables", ownerOnly, restaurant.ListTablesHandler())
	protected.Get("/restaurant/table/:id/qr-code", ownerOnly, restaurant.TableQRCodeHandler(cfg))

	protected.Post("/restaurant/inventory/menutypes", ownerOnly, restaurant.CreateMenuTypeHandler())
	protected.Get("/restaurant/inventory/menutypes", ownerOnly, restaurant.ListMenuTypesHandler())
	protected.Post("/restaurant/inventory/menusubtype", ownerOnly, restaurant.CreateMenuSubtypeHandler())
	protected.Get("/restaurant/inventory/menusubtype/:menutype_id", ownerOnly, restaurant.ListMenuSubtypesHandler())
	protected.Get("/restaurant/inventory/units", ownerOnly, restaurant.ListUnitCategoriesHandler())

	protected.Post("/restaurant/inventory/create", ownerOnly, inventory.CreateInventoryHandler())
	protected.Get("/restaurant/inventory/list", ownerOnly, inventory.ListInventoryHandler())
	protected.Put("/restaurant/inventory/update/:id", ownerOnly, inventory.UpdateInventoryHandler())
	protected.Delete("/restaurant/inventory/delete/:id", ownerOnly, inventory.DeleteInventoryHandler())

	// Kitchen staff management (owner scope)
	protected.Post("/account/kitchen-staff", ownerOnly, account.CreateKitchenStaffHandler())
	protected.Get("/account/kitchen-staff", ownerOnly, account.ListKitchenStaffHandler())
	protected.Put("/account/kitchen-staff/:id", ownerOnly, account.UpdateKitchenStaffHandler())
	protected.Delete("/account/kitchen-staff/:id", ownerOnly, account.DeleteKitchenStaffHandler())
	protected.Post("/account/kitchen-staff/password", ownerOnly, account.ChangeKitchenStaffPasswordHandler())

	// Orders: owners place; owners and kitchen staff list
	protected.Post("/order/create", ownerOnly, order.CreateOrderHandler(publisher))
	protected.Get("/order/list",
		auth.RequireRole(models.RoleRestaurant, models.RoleKitchenStaff),
		order.ListOrdersHandler())

	logrus.Infof("server listening on port %s", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logrus.Fatal(err)
	}
}

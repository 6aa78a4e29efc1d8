// Package testutil provides the in-memory database and seed data the
// handler and service tests run against.
package testutil

import (
	"testing"

	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB swaps the package-global database handle for an isolated
// in-memory one and restores the previous handle when the test ends.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// A single connection keeps every session on the same in-memory
	// database instance.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})
	return db
}

// Fixture is a fully wired restaurant: category, menu hierarchy, one
// stocked inventory item and one table.
type Fixture struct {
	Category    models.Category
	Restaurant  models.Restaurant
	MenuType    models.MenuType
	MenuSubtype models.MenuSubtype
	Unit        models.UnitCategory
	Inventory   models.Inventory
	Table       models.Table
}

// SeedRestaurant creates the fixture rows. The inventory item starts
// with 5 of 10 units available at a unit price of 120.
func SeedRestaurant(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()

	f := &Fixture{}

	f.Category = models.Category{Name: "Fine Dining"}
	if err := db.Create(&f.Category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	f.Restaurant = models.Restaurant{
		Name:        "Harbor House",
		OpeningTime: "09:00",
		ClosingTime: "22:00",
		PhoneNumber: "9876543210",
		Address:     "12 Pier Road",
		CategoryID:  f.Category.ID,
	}
	if err := db.Create(&f.Restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	f.MenuType = models.MenuType{Name: "Main Course", RestaurantID: f.Restaurant.ID}
	if err := db.Create(&f.MenuType).Error; err != nil {
		t.Fatalf("seed menu type: %v", err)
	}

	f.MenuSubtype = models.MenuSubtype{
		Name:         "Curries",
		CategoryType: models.ItemCategoryVeg,
		MenuTypeID:   f.MenuType.ID,
	}
	if err := db.Create(&f.MenuSubtype).Error; err != nil {
		t.Fatalf("seed menu subtype: %v", err)
	}

	if err := db.Where("abbreviation = ?", "plate").First(&f.Unit).Error; err != nil {
		t.Fatalf("load seeded unit: %v", err)
	}

	f.Inventory = models.Inventory{
		Name:              "Paneer Butter Masala",
		RestaurantID:      f.Restaurant.ID,
		Category:          models.ItemCategoryVeg,
		MenuTypeID:        f.MenuType.ID,
		MenuSubtypeID:     f.MenuSubtype.ID,
		UnitCategoryID:    f.Unit.ID,
		TotalQuantity:     10,
		AvailableQuantity: 5,
		UnitPrice:         120,
	}
	if err := db.Create(&f.Inventory).Error; err != nil {
		t.Fatalf("seed inventory: %v", err)
	}

	f.Table = models.Table{RestaurantID: f.Restaurant.ID, TableNumber: 1, Capacity: 4}
	if err := db.Create(&f.Table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}

	return f
}

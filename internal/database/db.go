package database

import (
	"hotelapp-backend/internal/config"
	"hotelapp-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("could not connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	logrus.Info("database connected, migration complete")
}

// Migrate runs AutoMigrate over every model and seeds lookup tables.
// Shared with tests, which run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Restaurant{},
		&models.Day{},
		&models.User{},
		&models.Table{},
		&models.TableQR{},
		&models.MenuType{},
		&models.MenuSubtype{},
		&models.UnitCategory{},
		&models.Inventory{},
		&models.Customer{},
		&models.OrderItem{},
		&models.Order{},
	)
	if err != nil {
		return err
	}
	return seedUnitCategories(db)
}

func seedUnitCategories(db *gorm.DB) error {
	units := []models.UnitCategory{
		{Name: "Milliliters", Abbreviation: "ml"},
		{Name: "Grams", Abbreviation: "g"},
		{Name: "Pieces", Abbreviation: "pcs"},
		{Name: "Plates", Abbreviation: "plate"},
		{Name: "Cups", Abbreviation: "cup"},
	}
	for _, u := range units {
		unit := u
		if err := db.Where(models.UnitCategory{Name: u.Name}).FirstOrCreate(&unit).Error; err != nil {
			return err
		}
	}
	return nil
}

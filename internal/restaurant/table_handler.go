package restaurant

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/auth"
	"hotelapp-backend/internal/config"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
)

type CreateTableRequest struct {
	TableNumber int `json:"tablenumber"`
	Capacity    int `json:"capacity"`
}

type TableResponse struct {
	ID          uint   `json:"id"`
	TableNumber int    `json:"tablenumber"`
	Capacity    int    `json:"capacity"`
	IsOccupied  bool   `json:"is_occupied"`
	CreatedAt   string `json:"created_at"`
}

func toTableResponse(t *models.Table) TableResponse {
	return TableResponse{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		IsOccupied:  t.IsOccupied,
		CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/restaurant/createtable
func CreateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var body CreateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		if body.Capacity <= 0 {
			return apperr.Validationf("Capacity must be greater than zero")
		}
		if body.TableNumber <= 0 {
			return apperr.Validationf("Table number must be greater than zero")
		}

		// (restaurant, table number) must be unique; the same number is
		// fine under a different restaurant.
		var exist models.Table
		err = database.DB.
			Where("restaurant_id = ? AND table_number = ?", restaurantID, body.TableNumber).
			First(&exist).Error
		if err == nil {
			return apperr.Conflictf("Table %d already exists for this restaurant", body.TableNumber)
		}

		table := models.Table{
			RestaurantID: restaurantID,
			TableNumber:  body.TableNumber,
			Capacity:     body.Capacity,
		}
		if err := database.DB.Create(&table).Error; err != nil {
			return apperr.Internal("Could not create table")
		}
		return respond.Created(c, toTableResponse(&table), "Table created successfully")
	}
}

// GET /api/restaurant/tables
func ListTablesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var tables []models.Table
		if err := database.DB.
			Where("restaurant_id = ?", restaurantID).
			Order("table_number").
			Find(&tables).Error; err != nil {
			return apperr.Internal("Could not list tables")
		}

		res := make([]TableResponse, 0, len(tables))
		for i := range tables {
			res = append(res, toTableResponse(&tables[i]))
		}
		return respond.OK(c, res)
	}
}

// GET /api/restaurant/table/:id/qr-code
//
// Generates a PNG encoding the table's serialized data and records it.
// Idempotent: while an active QR exists the stored link is returned
// with an "already exists" message instead of a new image.
func TableQRCodeHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		restaurantID, err := auth.CurrentRestaurantID(c)
		if err != nil {
			return err
		}

		var table models.Table
		if err := database.DB.First(&table, "id = ?", c.Params("id")).Error; err != nil {
			return apperr.NotFoundf("Table not found")
		}
		if table.RestaurantID != restaurantID {
			return apperr.Forbidden("You are not authorized to perform this action")
		}

		var existing models.TableQR
		err = database.DB.
			Where("table_id = ? AND is_active = ?", table.ID, true).
			First(&existing).Error
		if err == nil {
			return respond.JSON(c, fiber.StatusOK,
				fiber.Map{"qr_link": existing.QRLink},
				"QR code already exists for this table")
		}

		payload, err := json.Marshal(toTableResponse(&table))
		if err != nil {
			return apperr.Internal("Could not serialize table data")
		}

		if err := os.MkdirAll(cfg.QRImagePath, 0o755); err != nil {
			return apperr.Internal("Could not prepare QR image directory")
		}
		filename := fmt.Sprintf("table-%d-%d.png", table.RestaurantID, table.TableNumber)
		path := filepath.Join(cfg.QRImagePath, filename)
		if err := qrcode.WriteFile(string(payload), qrcode.Medium, 256, path); err != nil {
			return apperr.Internal("Could not generate QR code")
		}

		qr := models.TableQR{
			TableID:  table.ID,
			QRLink:   path,
			IsActive: true,
		}
		if err := database.DB.Create(&qr).Error; err != nil {
			return apperr.Internal("Could not save QR code")
		}

		return respond.Created(c, fiber.Map{"qr_link": qr.QRLink}, "QR code generated successfully")
	}
}

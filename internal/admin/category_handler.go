package admin

import (
	"strings"

	"hotelapp-backend/internal/apperr"
	"hotelapp-backend/internal/database"
	"hotelapp-backend/internal/models"
	"hotelapp-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func toCategoryResponse(cat *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return apperr.Validationf("Category name cannot be empty")
		}

		cat := models.Category{Name: body.Name, Description: body.Description}
		if err := database.DB.Create(&cat).Error; err != nil {
			return apperr.Internal("Could not create category")
		}
		return respond.Created(c, toCategoryResponse(&cat), "Category created successfully")
	}
}

func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cats []models.Category
		if err := database.DB.Order("name").Find(&cats).Error; err != nil {
			return apperr.Internal("Could not list categories")
		}

		res := make([]CategoryResponse, 0, len(cats))
		for i := range cats {
			res = append(res, toCategoryResponse(&cats[i]))
		}
		return respond.OK(c, res)
	}
}

func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", c.Params("id")).Error; err != nil {
			return apperr.NotFoundf("Category not found")
		}

		var body CategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validationf("Invalid request body")
		}
		if name := strings.TrimSpace(body.Name); name != "" {
			cat.Name = name
		}
		if body.Description != "" {
			cat.Description = body.Description
		}

		if err := database.DB.Save(&cat).Error; err != nil {
			return apperr.Internal("Could not update category")
		}
		return respond.OK(c, toCategoryResponse(&cat))
	}
}

func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", c.Params("id")).Error; err != nil {
			return apperr.NotFoundf("Category not found")
		}

		var inUse int64
		database.DB.Model(&models.Restaurant{}).Where("category_id = ?", cat.ID).Count(&inUse)
		if inUse > 0 {
			return apperr.Conflictf("Category is still used by %d restaurant(s)", inUse)
		}

		if err := database.DB.Delete(&cat).Error; err != nil {
			return apperr.Internal("Could not delete category")
		}
		return respond.Message(c, fiber.StatusOK, "Category deleted successfully")
	}
}

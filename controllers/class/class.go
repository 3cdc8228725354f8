package classController

import (
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/models"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListApprovedClasses returns every approved class. Public read.
func ListApprovedClasses(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classes := []models.Class{}
		if err := store.Db.Where("status = ?", models.ClassStatusApproved).Find(&classes).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully.", classes)
	}
}

// GetClass returns a single class by id. Public read.
func GetClass(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID := c.Locals("classID").(int)

		var class models.Class
		if err := store.Db.First(&class, classID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch class!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Class fetched successfully.", class)
	}
}

// ListByInstructorName returns approved classes taught by the named
// instructor. Public read.
func ListByInstructorName(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		classes := []models.Class{}
		if err := store.Db.Where("instructor_name = ? AND status = ?", name, models.ClassStatusApproved).
			Find(&classes).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully.", classes)
	}
}

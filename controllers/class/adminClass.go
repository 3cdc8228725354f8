package classController

import (
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/models"

	"github.com/gofiber/fiber/v2"
)

// ListAllClasses returns every class regardless of status. Admin only.
func ListAllClasses(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classes := []models.Class{}
		if err := store.Db.Order("created_at desc").Find(&classes).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully.", classes)
	}
}

// UpdateClassStatus approves or denies a pending class. Admin only.
func UpdateClassStatus(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID := c.Locals("classID").(int)

		reqData, ok := c.Locals("validatedStatus").(*struct {
			Status string `json:"status"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		result := store.Db.Model(&models.Class{}).Where("id = ?", classID).Update("status", reqData.Status)
		if result.Error != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class status!", nil)
		}
		if result.RowsAffected == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Class status updated.", fiber.Map{
			"modified": result.RowsAffected,
		})
	}
}

// UpdateFeedback attaches moderation feedback to a class. Admin only.
func UpdateFeedback(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID := c.Locals("classID").(int)

		reqData, ok := c.Locals("validatedFeedback").(*struct {
			Feedback string `json:"feedback"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		result := store.Db.Model(&models.Class{}).Where("id = ?", classID).Update("feedback", reqData.Feedback)
		if result.Error != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
		}
		if result.RowsAffected == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback saved.", fiber.Map{
			"modified": result.RowsAffected,
		})
	}
}

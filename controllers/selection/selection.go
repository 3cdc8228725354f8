package selectionController

import (
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/models"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListSelected returns the caller's cart. A query email different from
// the verified one shapes the response to empty data; the lookup always
// runs on the token email.
func ListSelected(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		if requested := c.Query("email"); requested != "" && requested != email {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Selected classes fetched.", []models.SelectedClass{})
		}

		selections := []models.SelectedClass{}
		if err := store.Db.Where("email = ?", email).Order("created_at desc").Find(&selections).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch selected classes!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Selected classes fetched.", selections)
	}
}

// SelectClass adds a class to the caller's cart. Selection is
// non-binding intent, so no capacity check happens here and duplicate
// selections may exist.
func SelectClass(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		classID := c.Locals("classID").(int)

		var class models.Class
		if err := store.Db.First(&class, classID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch class!", nil)
		}

		selection := models.SelectedClass{
			Email:          email,
			ClassID:        class.ID,
			ClassName:      class.Name,
			Image:          class.Image,
			InstructorName: class.InstructorName,
			Price:          class.Price,
			Seats:          class.Seats,
		}

		if err := store.Db.Create(&selection).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to select class!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class selected.", selection)
	}
}

// RemoveSelected deletes one cart entry owned by the caller
func RemoveSelected(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		selectionID := c.Locals("selectionID").(int)

		result := store.Db.Where("id = ? AND email = ?", selectionID, email).Delete(&models.SelectedClass{})
		if result.Error != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove selection!", nil)
		}
		if result.RowsAffected == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Selection not found!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Selection removed.", fiber.Map{
			"deleted": result.RowsAffected,
		})
	}
}

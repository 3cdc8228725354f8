package classController

import (
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/models"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateClass submits a new class for moderation. The owning email
// comes from the verified token; the class starts pending with its full
// seat capacity and nobody enrolled.
func CreateClass(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		reqData, ok := c.Locals("validatedClass").(*models.Class)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		newClass := models.Class{
			Name:             reqData.Name,
			InstructorName:   reqData.InstructorName,
			InstructorEmail:  email,
			InstructorImage:  reqData.InstructorImage,
			Image:            reqData.Image,
			Description:      reqData.Description,
			Price:            reqData.Price,
			Seats:            reqData.Seats,
			StudentsEnrolled: 0,
			Status:           models.ClassStatusPending,
		}

		if err := store.Db.Create(&newClass).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class submitted for review.", newClass)
	}
}

// UpdateClass lets the owning instructor edit a class while it is still
// pending. Ownership is decided on the verified email, and the seat
// counters stay out of reach: capacity edits replace Seats wholesale
// only before anyone could have enrolled.
func UpdateClass(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		classID := c.Locals("classID").(int)

		reqData, ok := c.Locals("validatedClass").(*models.Class)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		var class models.Class
		if err := store.Db.First(&class, classID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch class!", nil)
		}

		if class.InstructorEmail != email {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   true,
				"message": "You do not have permission to access this resource!",
			})
		}

		if class.Status != models.ClassStatusPending {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only pending classes can be edited!", nil)
		}

		updates := map[string]interface{}{
			"name":             reqData.Name,
			"instructor_name":  reqData.InstructorName,
			"instructor_image": reqData.InstructorImage,
			"image":            reqData.Image,
			"description":      reqData.Description,
			"price":            reqData.Price,
			"seats":            reqData.Seats,
		}

		if err := store.Db.Model(&class).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully.", class)
	}
}

// ListOwnClasses returns the classes the verified instructor owns. The
// path email only shapes the response: asking for someone else's list
// yields empty data, the query itself always runs on the token email.
func ListOwnClasses(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		requested := c.Params("email")

		if requested != email {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully.", []models.Class{})
		}

		classes := []models.Class{}
		if err := store.Db.Where("instructor_email = ?", email).Order("created_at desc").Find(&classes).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully.", classes)
	}
}

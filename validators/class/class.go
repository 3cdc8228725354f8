package classValidator

import (
	"ecolearner/middleware"
	"ecolearner/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClassID validates the :id path parameter
func ClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classIDStr := strings.TrimSpace(c.Params("id"))
		if classIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Class ID is required!", nil)
		}

		classID, err := strconv.Atoi(classIDStr)
		if err != nil || classID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}

		c.Locals("classID", classID)
		return c.Next()
	}
}

func ClassBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Class)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		// Validate Instructor Name
		if strings.TrimSpace(reqData.InstructorName) == "" {
			errors["instructorName"] = "Instructor name is required!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		// Validate Seats
		if reqData.Seats < 0 {
			errors["seats"] = "Seats must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

func ManageStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Only moderation outcomes are assignable; pending is the
		// creation default, never set by hand.
		switch reqData.Status {
		case models.ClassStatusApproved, models.ClassStatusDenied:
		default:
			errors["status"] = "Status must be approved or denied!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

func ManageFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Feedback string `json:"feedback"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Feedback) == "" {
			errors["feedback"] = "Feedback is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}

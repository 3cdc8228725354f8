package selectionValidator

import (
	"ecolearner/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SelectClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID int `json:"classId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ClassID <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"classId": "Class ID must be greater than 0!",
			})
		}

		c.Locals("classID", reqData.ClassID)
		return c.Next()
	}
}

func SelectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Selection ID is required!", nil)
		}

		selectionID, err := strconv.Atoi(idStr)
		if err != nil || selectionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Selection ID!", nil)
		}

		c.Locals("selectionID", selectionID)
		return c.Next()
	}
}

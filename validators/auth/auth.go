package authValidator

import (
	"ecolearner/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func IssueToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Email
		email := strings.TrimSpace(reqData.Email)
		if email == "" {
			errors["email"] = "Email is required!"
		} else if !strings.Contains(email, "@") {
			errors["email"] = "Email is not valid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Email = email
		c.Locals("validatedToken", reqData)
		return c.Next()
	}
}

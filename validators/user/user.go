package userValidator

import (
	"ecolearner/middleware"
	"ecolearner/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Photo string `json:"photo"`
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
		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Role
		switch reqData.Role {
		case models.RoleStudent, models.RoleInstructor, models.RoleAdmin:
		default:
			errors["role"] = "Role must be student, instructor or admin!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}

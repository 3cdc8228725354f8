package authController

import (
	"ecolearner/config"
	"ecolearner/middleware"
	"log"

	"github.com/gofiber/fiber/v2"
)

// IssueToken signs a JWT for the posted email. Registration is a
// separate concern; holding a token only proves the email claim, roles
// are resolved from the user store on every guarded request.
func IssueToken(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedToken").(*struct {
			Email string `json:"email"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		token, err := middleware.GenerateJWT(cfg, reqData.Email)
		if err != nil {
			log.Printf("Error signing token: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued successfully.", fiber.Map{
			"token": token,
		})
	}
}

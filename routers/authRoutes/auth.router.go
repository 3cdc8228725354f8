package authRoutes

import (
	"ecolearner/config"
	authControllers "ecolearner/controllers/auth"
	authValidators "ecolearner/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, cfg *config.Config) {
	app.Post("/jwt", authValidators.IssueToken(), authControllers.IssueToken(cfg))
}

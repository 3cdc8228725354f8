package selectionRoutes

import (
	"ecolearner/config"
	selectionControllers "ecolearner/controllers/selection"
	"ecolearner/database"
	"ecolearner/middleware"
	selectionValidators "ecolearner/validators/selection"

	"github.com/gofiber/fiber/v2"
)

func SetupSelectionRoutes(app *fiber.App, store *database.Store, cfg *config.Config) {
	auth := middleware.JWTMiddleware(cfg)

	selectionGroup := app.Group("/selectedClasses", auth)

	selectionGroup.Get("/", selectionControllers.ListSelected(store))
	selectionGroup.Post("/", selectionValidators.SelectClass(), selectionControllers.SelectClass(store))
	selectionGroup.Delete("/:id", selectionValidators.SelectionID(), selectionControllers.RemoveSelected(store))
}

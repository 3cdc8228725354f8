package userRoutes

import (
	"ecolearner/config"
	userControllers "ecolearner/controllers/user"
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/models"
	userValidators "ecolearner/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, store *database.Store, cfg *config.Config) {
	auth := middleware.JWTMiddleware(cfg)
	adminOnly := middleware.RequireRole(store, models.RoleAdmin)

	userGroup := app.Group("/users")

	userGroup.Post("/", userValidators.CreateUser(), userControllers.CreateUser(store))
	userGroup.Get("/", auth, adminOnly, userControllers.ListUsers(store))

	// Self role checks are authenticated but not role-gated; the result
	// only shapes what the frontend renders.
	userGroup.Get("/admin/:email", auth, userControllers.CheckAdmin(store))
	userGroup.Get("/instructor/:email", auth, userControllers.CheckInstructor(store))

	userGroup.Get("/:email", userControllers.GetUser(store))
	userGroup.Patch("/:email", auth, adminOnly, userValidators.UpdateRole(), userControllers.UpdateUserRole(store))
}

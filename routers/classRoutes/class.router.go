package classRoutes

import (
	"ecolearner/config"
	classControllers "ecolearner/controllers/class"
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/models"
	classValidators "ecolearner/validators/class"

	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App, store *database.Store, cfg *config.Config) {
	auth := middleware.JWTMiddleware(cfg)
	instructorOnly := middleware.RequireRole(store, models.RoleInstructor)
	adminOnly := middleware.RequireRole(store, models.RoleAdmin)

	classGroup := app.Group("/classes")

	// Public reads
	classGroup.Get("/", classControllers.ListApprovedClasses(store))
	app.Get("/instructors/:name", classControllers.ListByInstructorName(store))

	// Instructor surface
	classGroup.Post("/", auth, instructorOnly, classValidators.ClassBody(), classControllers.CreateClass(store))
	classGroup.Get("/instructor/:email", auth, instructorOnly, classControllers.ListOwnClasses(store))
	classGroup.Patch("/:id", auth, instructorOnly, classValidators.ClassID(), classValidators.ClassBody(), classControllers.UpdateClass(store))

	classGroup.Get("/:id", classValidators.ClassID(), classControllers.GetClass(store))

	// Admin moderation
	app.Get("/manageClasses", auth, adminOnly, classControllers.ListAllClasses(store))
	app.Patch("/manageClasses/:id", auth, adminOnly, classValidators.ClassID(), classValidators.ManageStatus(), classControllers.UpdateClassStatus(store))
	app.Patch("/manageFeedback/:id", auth, adminOnly, classValidators.ClassID(), classValidators.ManageFeedback(), classControllers.UpdateFeedback(store))
}

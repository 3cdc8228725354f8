package userController

import (
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/models"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateUser registers an email on first sign-in. Re-registering an
// existing email is a no-op that reports the record already exists.
func CreateUser(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedUser").(*struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Photo string `json:"photo"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		var existing models.User
		if err := store.Db.Where("email = ?", reqData.Email).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "User already exists!", nil)
		}

		newUser := models.User{
			Name:  reqData.Name,
			Email: reqData.Email,
			Photo: reqData.Photo,
			Role:  models.RoleStudent,
		}

		if err := store.Db.Create(&newUser).Error; err != nil {
			log.Printf("Error saving user to database: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
	}
}

// GetUser returns the record for an email, or empty data when absent
func GetUser(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Params("email")

		var user models.User
		if err := store.Db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusOK, true, "User not found.", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
	}
}

// ListUsers returns every registered user. Admin only.
func ListUsers(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users := []models.User{}
		if err := store.Db.Order("created_at desc").Find(&users).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
	}
}

// UpdateUserRole sets the role for an email. Admin only; the role guard
// has already run on the verified token before this executes.
func UpdateUserRole(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Params("email")

		reqData, ok := c.Locals("validatedRole").(*struct {
			Role string `json:"role"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		result := store.Db.Model(&models.User{}).Where("email = ?", email).Update("role", reqData.Role)
		if result.Error != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
		}
		if result.RowsAffected == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully.", fiber.Map{
			"modified": result.RowsAffected,
		})
	}
}

// CheckAdmin reports whether the caller is an admin. The path email is
// compared to the verified one only to shape the response; a caller
// asking about someone else just gets false, never an error.
func CheckAdmin(store *database.Store) fiber.Handler {
	return roleCheck(store, models.RoleAdmin, "admin")
}

// CheckInstructor mirrors CheckAdmin for the instructor role
func CheckInstructor(store *database.Store) fiber.Handler {
	return roleCheck(store, models.RoleInstructor, "instructor")
}

func roleCheck(store *database.Store, role, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Params("email")
		verified, _ := c.Locals("email").(string)

		if email != verified {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Role checked.", fiber.Map{key: false})
		}

		resolved, err := middleware.ResolveRole(store.Db, verified)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check role!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Role checked.", fiber.Map{key: resolved == role})
	}
}

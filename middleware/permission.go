package middleware

import (
	"ecolearner/database"
	"ecolearner/models"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResolveRole looks up the role recorded for an email. An email with no
// user row resolves to student: unknown identities are not an error,
// they simply carry no elevated privilege.
func ResolveRole(db *gorm.DB, email string) (string, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoleStudent, nil
		}
		return "", err
	}
	if user.Role == "" {
		return models.RoleStudent, nil
	}
	return user.Role, nil
}

// RequireRole returns a middleware that checks the caller holds the
// required role. It must run after JWTMiddleware and decides on the
// email taken from the verified token, never on a path or query
// parameter supplied by the caller.
func RequireRole(store *database.Store, requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "Unauthorized: verified identity not found",
			})
		}

		role, err := ResolveRole(store.Db, email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   true,
				"message": "Server error while checking permissions!",
			})
		}

		if role != requiredRole {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   true,
				"message": "You do not have permission to access this resource!",
			})
		}

		return c.Next()
	}
}

package middleware_test

import (
	"ecolearner/middleware"
	"ecolearner/models"
	"ecolearner/testutil"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoleDefaultsToStudent(t *testing.T) {
	store := testutil.NewTestStore(t)

	role, err := middleware.ResolveRole(store.Db, "nobody@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, role)
}

func TestResolveRoleReturnsStoredRole(t *testing.T) {
	store := testutil.NewTestStore(t)
	testutil.SeedUser(t, store, "admin@x.com", models.RoleAdmin)
	testutil.SeedUser(t, store, "teach@x.com", models.RoleInstructor)

	role, err := middleware.ResolveRole(store.Db, "admin@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	role, err = middleware.ResolveRole(store.Db, "teach@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleInstructor, role)
}

func TestRequireRoleForbidsMismatch(t *testing.T) {
	cfg := testutil.NewTestConfig()
	store := testutil.NewTestStore(t)
	testutil.SeedUser(t, store, "alice@x.com", models.RoleStudent)
	testutil.SeedUser(t, store, "admin@x.com", models.RoleAdmin)

	reached := false
	app := fiber.New()
	app.Get("/admin-only",
		middleware.JWTMiddleware(cfg),
		middleware.RequireRole(store, models.RoleAdmin),
		func(c *fiber.Ctx) error {
			reached = true
			return c.SendStatus(fiber.StatusOK)
		})

	// Student token: forbidden, handler never runs
	req, _ := http.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+testutil.Token(t, cfg, "alice@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, reached)

	// Unknown email resolves to student: also forbidden
	req, _ = http.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+testutil.Token(t, cfg, "ghost@x.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, reached)

	// Admin token passes
	req, _ = http.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+testutil.Token(t, cfg, "admin@x.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, reached)
}

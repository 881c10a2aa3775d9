package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ikk_backend/internals/constants"
)

func gatedApp(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/terjaga", gate, func(c *fiber.Ctx) error {
		return c.SendString("lolos")
	})
	return app
}

func TestOnlyRoles_SlicePerRole(t *testing.T) {
	gate := OnlyRoles("❌ khusus enumerator", constants.EnumeratorOnly...)

	cases := []struct {
		role string
		want int
	}{
		{constants.RoleEnumerator, fiber.StatusOK},
		{constants.RoleSuperadmin, fiber.StatusOK}, // superadmin lolos semua gate per-role
		{constants.RoleVerifikator, fiber.StatusForbidden},
		{constants.RoleKoorInstansi, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		app := gatedApp(tc.role, gate)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/terjaga", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, "role %s", tc.role)
	}
}

func TestOnlyRoles_TanpaRole_401(t *testing.T) {
	gate := OnlyRoles("❌ khusus verifikator", constants.VerifikatorOnly...)
	app := gatedApp("", gate)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/terjaga", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOnlyRoles_InstansiRoles(t *testing.T) {
	gate := OnlyRoles("❌ khusus role instansi",
		append(constants.InstansiRoles, constants.RoleSuperadmin)...)

	for _, role := range constants.InstansiRoles {
		app := gatedApp(role, gate)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/terjaga", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "role %s", role)
	}

	app := gatedApp(constants.RoleKoorNasional, gate)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/terjaga", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil user_id dari c.Locals("user_id")
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// GetRoleFromToken mengambil role dari Locals (diisi oleh auth middleware).
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
	}
	return role, nil
}

// GetAgencyIDFromToken mengambil agency_id (instansi) dari Locals.
// Return uuid.Nil tanpa error kalau klaim tidak ada (user lintas instansi).
func GetAgencyIDFromToken(c *fiber.Ctx) uuid.UUID {
	if s, ok := c.Locals("agency_id").(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			return id
		}
	}
	return uuid.Nil
}

// GetActorIDFromTokenOrHeader mengambil ID aktor dari token; kalau tidak ada,
// fallback ke header lama (x-enumerator-id / x-koorinstansi-id) demi kompatibilitas
// dengan klien lama. 401 kalau dua-duanya kosong.
func GetActorIDFromTokenOrHeader(c *fiber.Ctx, headerName string) (uuid.UUID, error) {
	if id, err := GetUserIDFromToken(c); err == nil {
		return id, nil
	}
	if raw := strings.TrimSpace(c.Get(headerName)); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Header "+headerName+" tidak valid")
		}
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Identitas aktor tidak ditemukan")
}

// file: internals/features/ikk/agency/route/agency_route.go
package route

import (
	"ikk_backend/internals/constants"
	controller "ikk_backend/internals/features/ikk/agency/controller"
	authMiddleware "ikk_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AgencyRoutes(app *fiber.App, db *gorm.DB) {
	agencyController := controller.NewAgencyController(db)

	agencies := app.Group("/api/agencies", authMiddleware.AuthMiddleware(db))

	// Semua role boleh membaca daftar instansi
	agencies.Get("/", agencyController.List)
	agencies.Get("/:id", agencyController.GetByID)

	// 🔒 Mutasi hanya superadmin
	superadmin := authMiddleware.OnlyRoles(
		"❌ Hanya superadmin yang boleh mengelola data instansi.",
		constants.SuperadminOnly...,
	)
	agencies.Post("/", superadmin, agencyController.Create)
	agencies.Put("/:id", superadmin, agencyController.Update)
	agencies.Delete("/:id", superadmin, agencyController.Delete)
}

// file: internals/features/users/user/route/user_route.go
package route

import (
	"ikk_backend/internals/constants"
	controller "ikk_backend/internals/features/users/user/controller"
	authMiddleware "ikk_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controller.NewUserController(db)

	users := app.Group("/api/users", authMiddleware.AuthMiddleware(db))

	// Profil user yang sedang login
	users.Get("/me", userController.Me)

	// 🔒 Hanya admin instansi / superadmin yang mengelola akun
	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdminInstansi("manajemen pengguna"),
		constants.AdminInstansiOnly...,
	)
	users.Get("/", adminOnly, userController.List)
	users.Patch("/:id/status", adminOnly, userController.SetActiveStatus)
}

// file: internals/features/ikk/score/route/score_route.go
package route

import (
	"ikk_backend/internals/constants"
	controller "ikk_backend/internals/features/ikk/score/controller"
	authMiddleware "ikk_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ScoreRoutes(app *fiber.App, db *gorm.DB) {
	scoreController := controller.NewScoreController(db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	// Jawaban enumerator → upsert skor KI
	api.Post("/answers",
		authMiddleware.OnlyRoles(
			constants.RoleErrorEnumerator("pengisian jawaban IKK"),
			constants.EnumeratorOnly...,
		),
		scoreController.SaveKIScore,
	)

	// Koreksi skor KI oleh koordinator instansi
	api.Post("/koorinstansi/update-ikk-ki-score",
		authMiddleware.OnlyRoles(
			constants.RoleErrorKoorInstansi("pembaruan skor KI"),
			constants.KoorInstansiOnly...,
		),
		scoreController.SaveKIScore,
	)

	// Skor KU oleh koordinator utama
	api.Post("/save-ikk-ku-score",
		authMiddleware.OnlyRoles(
			constants.RoleErrorKoorNasional("pengisian skor KU"),
			constants.KoorNasionalOnly...,
		),
		scoreController.SaveKUScore,
	)

	// Gabungan skor KI + KU per kebijakan
	api.Get("/scores/:id", scoreController.GetByPolicyID)
}

// file: internals/features/ikk/summary/route/summary_route.go
package route

import (
	controller "ikk_backend/internals/features/ikk/summary/controller"
	"ikk_backend/internals/features/ikk/summary/service"
	authMiddleware "ikk_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SummaryRoutes(app *fiber.App, db *gorm.DB) {
	summaryController := controller.NewSummaryController(db, service.NewSummaryService())

	policies := app.Group("/api/policies", authMiddleware.AuthMiddleware(db))
	policies.Post("/:id/ringkasan", summaryController.Summarize)
}

package details

import (
	agencyRoute "ikk_backend/internals/features/ikk/agency/route"
	policyRoute "ikk_backend/internals/features/ikk/policy/route"
	scoreRoute "ikk_backend/internals/features/ikk/score/route"
	summaryRoute "ikk_backend/internals/features/ikk/summary/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func IKKRoutes(app *fiber.App, db *gorm.DB) {

	// Urutan penting: path statis kebijakan terdaftar sebelum /:id/ringkasan
	policyRoute.PolicyRoutes(app, db)
	summaryRoute.SummaryRoutes(app, db)

	scoreRoute.ScoreRoutes(app, db)
	agencyRoute.AgencyRoutes(app, db)

}

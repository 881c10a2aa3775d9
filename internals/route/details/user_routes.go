package details

import (
	userRoute "ikk_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {

	userRoute.UserRoutes(app, db)

}

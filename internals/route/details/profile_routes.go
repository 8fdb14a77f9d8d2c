// file: internals/route/details/profile_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileRoute "cyberku_backend/internals/features/profiles/profile/route"
)

func ProfileRoutes(app *fiber.App, db *gorm.DB) {
	profileRoute.ProfileRoutes(app, db)
}

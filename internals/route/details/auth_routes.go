// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "cyberku_backend/internals/features/users/admin/route"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	adminRoute.AdminRoutes(app, db)
}

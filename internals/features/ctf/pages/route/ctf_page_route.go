// file: internals/features/ctf/pages/route/ctf_page_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "cyberku_backend/internals/features/ctf/pages/controller"
)

func CtfPageRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewCtfPageController(db)

	pages := app.Group("/api/ctf-page-management")
	pages.Get("/", ctrl.GetAll)
	pages.Get("/section/:section", ctrl.GetBySection)
	pages.Put("/:id", ctrl.UpdateContent)
}

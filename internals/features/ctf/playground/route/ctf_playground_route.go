// file: internals/features/ctf/playground/route/ctf_playground_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "cyberku_backend/internals/features/ctf/playground/controller"
)

func PlaygroundRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewPlaygroundController(db)

	playground := app.Group("/api/ctf-playground")

	// 🔓 PUBLIC - untuk frontend user
	playground.Get("/categories", ctrl.GetCategoriesWithChallenges)
	playground.Get("/page-config", ctrl.GetPageConfig)
	playground.Put("/page-config", ctrl.UpdatePageConfig)

	// 🔐 ADMIN - untuk admin panel
	admin := playground.Group("/admin")

	admin.Get("/categories", ctrl.GetAllCategories)
	admin.Get("/categories/:id", ctrl.GetCategoryByID)
	admin.Post("/categories", ctrl.CreateCategory)
	admin.Put("/categories/:id", ctrl.UpdateCategory)
	admin.Delete("/categories/:id", ctrl.DeleteCategory)

	admin.Get("/challenges", ctrl.GetAllChallenges)
	admin.Get("/challenges/:id", ctrl.GetChallengeByID)
	admin.Post("/challenges", ctrl.CreateChallenge)
	admin.Put("/challenges/:id", ctrl.UpdateChallenge)
	admin.Delete("/challenges/:id", ctrl.DeleteChallenge)
}

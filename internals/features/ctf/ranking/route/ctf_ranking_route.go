// file: internals/features/ctf/ranking/route/ctf_ranking_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "cyberku_backend/internals/features/ctf/ranking/controller"
)

func RankingRoutes(app *fiber.App, db *gorm.DB) {
	rankCtrl := controller.NewRankingController(db)
	cfgCtrl := controller.NewPageConfigController(db)

	rankings := app.Group("/api/rankings")
	rankings.Get("/", rankCtrl.GetAll)
	rankings.Get("/:id", rankCtrl.GetByID)
	rankings.Post("/", rankCtrl.Create)
	rankings.Put("/:id", rankCtrl.Update)
	rankings.Delete("/:id", rankCtrl.Delete)

	pageConfig := app.Group("/api/page-config")
	pageConfig.Get("/", cfgCtrl.Get)
	pageConfig.Put("/", cfgCtrl.Update)
}

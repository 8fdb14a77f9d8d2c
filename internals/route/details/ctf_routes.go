// file: internals/route/details/ctf_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accessRoute "cyberku_backend/internals/features/ctf/access/route"
	pageRoute "cyberku_backend/internals/features/ctf/pages/route"
	playgroundRoute "cyberku_backend/internals/features/ctf/playground/route"
	rankingRoute "cyberku_backend/internals/features/ctf/ranking/route"
)

func CtfRoutes(app *fiber.App, db *gorm.DB) {
	playgroundRoute.PlaygroundRoutes(app, db)
	accessRoute.AccessRoutes(app, db)
	rankingRoute.RankingRoutes(app, db)
	pageRoute.CtfPageRoutes(app, db)
}

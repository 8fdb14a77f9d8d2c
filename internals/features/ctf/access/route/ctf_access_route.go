// file: internals/features/ctf/access/route/ctf_access_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/configs"
	controller "cyberku_backend/internals/features/ctf/access/controller"
	authMw "cyberku_backend/internals/middlewares/auth"
)

func AccessRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAccessController(db)

	access := app.Group("/api/ctf-access")

	// 🔓 PUBLIC: pengecekan kode akses dari halaman playground
	access.Post("/check-access", ctrl.CheckAccess)

	// 🔐 ADMIN
	adminOnly := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})
	access.Get("/access-codes", adminOnly, ctrl.ListAccessCodes)
	access.Put("/access-code/:id", adminOnly, ctrl.UpdateAccessCode)
}

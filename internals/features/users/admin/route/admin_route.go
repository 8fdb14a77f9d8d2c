// file: internals/features/users/admin/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/configs"
	controller "cyberku_backend/internals/features/users/admin/controller"
	"cyberku_backend/internals/middlewares"
	middleware "cyberku_backend/internals/middlewares/auth"
)

func AdminRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)
	adminCtrl := controller.NewAdminController(db)

	// Login dibatasi rate limiter khusus biar nggak bisa brute force
	app.Post("/api/login", middlewares.LoginRateLimiter(), authCtrl.Login)

	admins := app.Group("/api/admins",
		middleware.AuthJWT(middleware.AuthJWTOpts{Secret: configs.JWTSecret}))
	admins.Get("/", adminCtrl.GetAll)
	admins.Put("/email/:id", adminCtrl.UpdateEmail)
	admins.Put("/password/:id", adminCtrl.UpdatePassword)
	admins.Put("/phone/:id", adminCtrl.UpdatePhone)
}

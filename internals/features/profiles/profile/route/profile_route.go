// file: internals/features/profiles/profile/route/profile_route.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "cyberku_backend/internals/features/profiles/profile/controller"
	ossHelper "cyberku_backend/internals/helpers/oss"
)

func ProfileRoutes(app *fiber.App, db *gorm.DB) {
	var blob ossHelper.BlobService
	if svc, err := ossHelper.NewOSSBlobServiceFromEnv("uploads"); err != nil {
		log.Printf("[WARN] OSS tidak aktif, upload foto profil dimatikan: %v", err)
	} else {
		blob = svc
	}

	ctrl := controller.NewProfileController(db, blob)

	profile := app.Group("/api/profile")
	profile.Post("/", ctrl.Create)
	profile.Get("/:id", ctrl.GetByID)
	profile.Put("/:id", ctrl.Update)
	profile.Get("/:id/photo-history", ctrl.GetPhotoHistory)
	profile.Delete("/photo-history/:id", ctrl.DeletePhotoHistory)
}

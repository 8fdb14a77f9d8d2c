// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/route/details"
)

var startTime = time.Now()

// SetupRoutes mendaftarkan semua route aplikasi.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setup base routes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setup auth & admin routes...")
	details.AuthRoutes(app, db)

	log.Println("[INFO] Setup CTF routes...")
	details.CtfRoutes(app, db)

	log.Println("[INFO] Setup certificate routes...")
	details.CertificateRoutes(app, db)

	log.Println("[INFO] Setup profile routes...")
	details.ProfileRoutes(app, db)

	log.Println("[INFO] Semua route siap 🚀")
}

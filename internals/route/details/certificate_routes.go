// file: internals/route/details/certificate_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sertifRoute "cyberku_backend/internals/features/certificates/sertifikat/route"
)

func CertificateRoutes(app *fiber.App, db *gorm.DB) {
	sertifRoute.CertificateRoutes(app, db)
}

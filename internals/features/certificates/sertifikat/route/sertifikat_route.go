// file: internals/features/certificates/sertifikat/route/sertifikat_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pagesCtrl "cyberku_backend/internals/features/certificates/pages/controller"
	controller "cyberku_backend/internals/features/certificates/sertifikat/controller"
)

func CertificateRoutes(app *fiber.App, db *gorm.DB) {
	sertifCtrl := controller.NewSertifikatController(db)
	pageCtrl := pagesCtrl.NewSertifPageController(db)
	detailCtrl := pagesCtrl.NewDetailSertifController(db)

	sertifikat := app.Group("/api/sertifikat")
	sertifikat.Get("/", sertifCtrl.GetAll)
	sertifikat.Get("/:kode", sertifCtrl.GetByKode)
	sertifikat.Post("/", sertifCtrl.Create)
	sertifikat.Put("/:id", sertifCtrl.Update)
	sertifikat.Delete("/:id", sertifCtrl.Delete)

	pageMgmt := app.Group("/api/page-management")
	pageMgmt.Get("/", pageCtrl.GetAll)
	pageMgmt.Get("/section/:section", pageCtrl.GetBySection)
	pageMgmt.Get("/:id", pageCtrl.GetByID)
	pageMgmt.Post("/", pageCtrl.Create)
	pageMgmt.Put("/:id", pageCtrl.UpdateContent)
	pageMgmt.Delete("/:id", pageCtrl.Delete)

	detailMgmt := app.Group("/api/detail-sertif-management")
	detailMgmt.Get("/", detailCtrl.GetAll)
	detailMgmt.Get("/field/:field", detailCtrl.GetByField)
	detailMgmt.Post("/", detailCtrl.Create)
	detailMgmt.Put("/:id", detailCtrl.UpdateContent)
	detailMgmt.Delete("/:id", detailCtrl.Delete)
}

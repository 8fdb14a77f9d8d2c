package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/ctf/ranking/dto"
	"cyberku_backend/internals/features/ctf/ranking/model"
	helper "cyberku_backend/internals/helpers"
)

type PageConfigController struct {
	DB *gorm.DB
}

func NewPageConfigController(db *gorm.DB) *PageConfigController {
	return &PageConfigController{DB: db}
}

// GET /api/page-config — baris terbaru, atau default kalau tabel kosong
func (ctrl *PageConfigController) Get(c *fiber.Ctx) error {
	var cfg model.PageConfigModel
	err := ctrl.DB.WithContext(c.UserContext()).Order("id DESC").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "ok", fiber.Map{
			"header_title": "CTF Ranking",
			"page_title":   "Competition Results",
			"description":  "Welcome to our CTF competition ranking page!",
		})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil page config")
	}
	return helper.JsonOK(c, "ok", cfg)
}

// PUT /api/page-config (upsert)
func (ctrl *PageConfigController) Update(c *fiber.Ctx) error {
	var req dto.PageConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	now := time.Now()
	var cfg model.PageConfigModel
	err := ctrl.DB.WithContext(c.UserContext()).Order("id DESC").First(&cfg).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cfg = model.PageConfigModel{
			HeaderTitle: req.HeaderTitle,
			PageTitle:   req.PageTitle,
			Description: req.Description,
			UpdatedAt:   &now,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&cfg).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan page config")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil page config")
	default:
		updates := map[string]interface{}{
			"header_title": req.HeaderTitle,
			"page_title":   req.PageTitle,
			"description":  req.Description,
			"updated_at":   now,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Model(&cfg).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update page config")
		}
	}

	return helper.JsonUpdated(c, "Page config tersimpan", cfg)
}

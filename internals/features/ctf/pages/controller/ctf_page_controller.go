package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/ctf/pages/model"
	helper "cyberku_backend/internals/helpers"
)

type CtfPageController struct {
	DB *gorm.DB
}

func NewCtfPageController(db *gorm.DB) *CtfPageController {
	return &CtfPageController{DB: db}
}

// GET /api/ctf-page-management
func (ctrl *CtfPageController) GetAll(c *fiber.Ctx) error {
	var rows []model.CtfPageContentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("section, id").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil konten halaman CTF")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/ctf-page-management/section/:section
func (ctrl *CtfPageController) GetBySection(c *fiber.Ctx) error {
	section := c.Params("section")

	var rows []model.CtfPageContentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("section = ?", section).
		Order("id").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil konten halaman CTF")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PUT /api/ctf-page-management/:id
func (ctrl *CtfPageController) UpdateContent(c *fiber.Ctx) error {
	id := c.Params("id")

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var row model.CtfPageContentModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil konten")
	}

	now := time.Now()
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&row).Updates(map[string]interface{}{
		"content":    req.Content,
		"updated_at": now,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update konten")
	}
	return helper.JsonUpdated(c, "Konten berhasil diperbarui", row)
}

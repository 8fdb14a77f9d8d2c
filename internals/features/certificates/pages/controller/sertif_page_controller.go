package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/certificates/pages/model"
	helper "cyberku_backend/internals/helpers"
)

type SertifPageController struct {
	DB *gorm.DB
}

func NewSertifPageController(db *gorm.DB) *SertifPageController {
	return &SertifPageController{DB: db}
}

type contentRequest struct {
	Content string `json:"content"`
}

type pageContentRequest struct {
	Section   string `json:"section" validate:"required"`
	FieldName string `json:"field_name" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

// GET /api/page-management
func (ctrl *SertifPageController) GetAll(c *fiber.Ctx) error {
	var rows []model.SertifPageModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("section, id").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil konten halaman")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/page-management/section/:section
func (ctrl *SertifPageController) GetBySection(c *fiber.Ctx) error {
	section := c.Params("section")

	var rows []model.SertifPageModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("section = ?", section).
		Order("id").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil konten halaman")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/page-management/:id
func (ctrl *SertifPageController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var row model.SertifPageModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil konten")
	}
	return helper.JsonOK(c, "ok", row)
}

// POST /api/page-management
func (ctrl *SertifPageController) Create(c *fiber.Ctx) error {
	var req pageContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	row := model.SertifPageModel{
		Section:   req.Section,
		FieldName: req.FieldName,
		Content:   req.Content,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan konten")
	}
	return helper.JsonCreated(c, "Konten berhasil dibuat", row)
}

// DELETE /api/page-management/:id
func (ctrl *SertifPageController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.SertifPageModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus konten")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Konten dihapus", fiber.Map{"id": id})
}

// PUT /api/page-management/:id
func (ctrl *SertifPageController) UpdateContent(c *fiber.Ctx) error {
	id := c.Params("id")

	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var row model.SertifPageModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil konten")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&row).Updates(map[string]interface{}{
		"content":    req.Content,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update konten")
	}
	return helper.JsonUpdated(c, "Konten berhasil diperbarui", row)
}

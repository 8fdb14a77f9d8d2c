package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/certificates/pages/model"
	helper "cyberku_backend/internals/helpers"
)

type DetailSertifController struct {
	DB *gorm.DB
}

func NewDetailSertifController(db *gorm.DB) *DetailSertifController {
	return &DetailSertifController{DB: db}
}

// GET /api/detail-sertif-management
func (ctrl *DetailSertifController) GetAll(c *fiber.Ctx) error {
	var rows []model.DetailSertifModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("id").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil konten detail sertifikat")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/detail-sertif-management/field/:field
func (ctrl *DetailSertifController) GetByField(c *fiber.Ctx) error {
	field := c.Params("field")

	var row model.DetailSertifModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("field_name = ?", field).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Field tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil konten")
	}
	return helper.JsonOK(c, "ok", row)
}

// POST /api/detail-sertif-management
func (ctrl *DetailSertifController) Create(c *fiber.Ctx) error {
	var req struct {
		FieldName string `json:"field_name" validate:"required"`
		Content   string `json:"content" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	row := model.DetailSertifModel{
		FieldName: req.FieldName,
		Content:   req.Content,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan konten")
	}
	return helper.JsonCreated(c, "Konten berhasil dibuat", row)
}

// DELETE /api/detail-sertif-management/:id
func (ctrl *DetailSertifController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.DetailSertifModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus konten")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Konten dihapus", fiber.Map{"id": id})
}

// PUT /api/detail-sertif-management/:id
func (ctrl *DetailSertifController) UpdateContent(c *fiber.Ctx) error {
	id := c.Params("id")

	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var row model.DetailSertifModel
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

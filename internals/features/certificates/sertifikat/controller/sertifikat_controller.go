package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/certificates/sertifikat/dto"
	"cyberku_backend/internals/features/certificates/sertifikat/model"
	helper "cyberku_backend/internals/helpers"
)

type SertifikatController struct {
	DB *gorm.DB
}

func NewSertifikatController(db *gorm.DB) *SertifikatController {
	return &SertifikatController{DB: db}
}

// GET /api/sertifikat
func (ctrl *SertifikatController) GetAll(c *fiber.Ctx) error {
	var rows []model.SertifikatModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data sertifikat")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/sertifikat/:kode
// Lookup publik: peserta cek sertifikatnya pakai kode unik.
func (ctrl *SertifikatController) GetByKode(c *fiber.Ctx) error {
	kode := c.Params("kode")

	var row model.SertifikatModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("kode = ?", kode).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data sertifikat")
	}
	return helper.JsonOK(c, "ok", row)
}

// POST /api/sertifikat
func (ctrl *SertifikatController) Create(c *fiber.Ctx) error {
	var req dto.SertifikatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// Kode sertifikat unik
	var taken int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SertifikatModel{}).
		Where("kode = ?", req.Kode).
		Count(&taken).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek kode sertifikat")
	}
	if taken > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kode sertifikat sudah dipakai")
	}

	row := model.SertifikatModel{
		Kode:   req.Kode,
		Nama:   req.Nama,
		Status: req.Status,
		Event:  req.Event,
		Link:   req.Link,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan sertifikat")
	}
	return helper.JsonCreated(c, "Sertifikat berhasil dibuat", row)
}

// PUT /api/sertifikat/:id
func (ctrl *SertifikatController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.SertifikatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var row model.SertifikatModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data sertifikat")
	}

	now := time.Now()
	updates := map[string]interface{}{
		"kode":       req.Kode,
		"nama":       req.Nama,
		"status":     req.Status,
		"event":      req.Event,
		"link":       req.Link,
		"updated_at": now,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&row).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update sertifikat")
	}
	return helper.JsonUpdated(c, "Sertifikat berhasil diperbarui", row)
}

// DELETE /api/sertifikat/:id
func (ctrl *SertifikatController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.SertifikatModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus sertifikat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Sertifikat dihapus", fiber.Map{"id": id})
}

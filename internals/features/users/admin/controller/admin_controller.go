package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/users/admin/dto"
	"cyberku_backend/internals/features/users/admin/model"
	helper "cyberku_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GET /api/admins
func (ctrl *AdminController) GetAll(c *fiber.Ctx) error {
	var admins []model.AdminModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("id").
		Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data admin")
	}
	if len(admins) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Belum ada admin terdaftar")
	}

	out := make([]dto.AdminSummary, 0, len(admins))
	for _, a := range admins {
		out = append(out, dto.AdminSummary{
			ID:          a.ID,
			Email:       a.Email,
			PhoneNumber: a.PhoneNumber,
		})
	}
	return helper.JsonOK(c, "ok", out)
}

// PUT /api/admins/email/:id
func (ctrl *AdminController) UpdateEmail(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	admin, err := ctrl.findAdmin(c, id)
	if err != nil {
		return err
	}

	// Email harus unik antar admin lain
	var taken int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.AdminModel{}).
		Where("email = ? AND id <> ?", req.NewEmail, admin.ID).
		Count(&taken).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek email")
	}
	if taken > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already in use")
	}

	return ctrl.applyUpdate(c, admin, map[string]interface{}{"email": req.NewEmail}, "Email berhasil diperbarui")
}

// PUT /api/admins/password/:id
func (ctrl *AdminController) UpdatePassword(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	admin, err := ctrl.findAdmin(c, id)
	if err != nil {
		return err
	}

	hashed, hashErr := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if hashErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	return ctrl.applyUpdate(c, admin, map[string]interface{}{"password": string(hashed)}, "Password berhasil diperbarui")
}

// PUT /api/admins/phone/:id
// Nomor lokal 08xx dinormalisasi ke +62 sebelum divalidasi.
func (ctrl *AdminController) UpdatePhone(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdatePhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	phone := helper.NormalizePhone(req.NewPhone)
	if !helper.IsValidIndonesianPhone(phone) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format nomor telepon tidak valid")
	}

	admin, err := ctrl.findAdmin(c, id)
	if err != nil {
		return err
	}

	return ctrl.applyUpdate(c, admin, map[string]interface{}{"phone_number": phone}, "Nomor telepon berhasil diperbarui")
}

func (ctrl *AdminController) findAdmin(c *fiber.Ctx, id string) (*model.AdminModel, error) {
	var admin model.AdminModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&admin, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data admin")
	}
	return &admin, nil
}

func (ctrl *AdminController) applyUpdate(c *fiber.Ctx, admin *model.AdminModel, updates map[string]interface{}, okMsg string) error {
	updates["updatedAt"] = time.Now()
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(admin).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update data admin")
	}
	return helper.JsonUpdated(c, okMsg, dto.AdminSummary{
		ID:          admin.ID,
		Email:       admin.Email,
		PhoneNumber: admin.PhoneNumber,
	})
}

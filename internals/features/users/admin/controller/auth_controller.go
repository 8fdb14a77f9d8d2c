package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/users/admin/dto"
	"cyberku_backend/internals/features/users/admin/model"
	"cyberku_backend/internals/features/users/admin/service"
	helper "cyberku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/login
// Email tidak ditemukan dan password salah sengaja dibalas sama: 401 Invalid credentials.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var admin model.AdminModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("email = ?", req.Email).
		First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		log.Printf("[ERROR] login query gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.GenerateAdminToken(&admin)
	if err != nil {
		log.Printf("[ERROR] gagal generate token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"token": token,
		"admin": dto.AdminSummary{
			ID:          admin.ID,
			Email:       admin.Email,
			PhoneNumber: admin.PhoneNumber,
		},
	})
}

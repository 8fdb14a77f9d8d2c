package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/ctf/access/repository"
	"cyberku_backend/internals/features/ctf/access/service"
	"cyberku_backend/internals/features/ctf/playground/model"
	helper "cyberku_backend/internals/helpers"
)

type AccessController struct {
	DB        *gorm.DB
	Validator *service.AccessValidator
}

func NewAccessController(db *gorm.DB) *AccessController {
	return &AccessController{
		DB:        db,
		Validator: service.NewAccessValidator(repository.NewGormChallengeFinder(db)),
	}
}

/* ==========================
   Request parsing
========================== */

// FlexID menerima string maupun angka dari JSON ("5" dan 5 sama-sama valid).
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		*f = FlexID(s[1 : len(s)-1])
		return nil
	}
	// angka: buang bagian desimal kalau ada (JSON number selalu float)
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexID(strconv.FormatInt(int64(n), 10))
		return nil
	}
	*f = FlexID(s)
	return nil
}

type checkAccessRequest struct {
	AccessCode  string `json:"accessCode"`
	ChallengeID FlexID `json:"challengeId"`
}

type updateAccessCodeRequest struct {
	AccessCode string `json:"access_code"`
}

/* ==========================
   Handlers
========================== */

// POST /api/ctf-access/check-access
// Response shape mengikuti kontrak frontend lama:
// {status, valid, challenge?, message?}
func (ctrl *AccessController) CheckAccess(c *fiber.Ctx) error {
	var req checkAccessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Payload tidak valid",
		})
	}

	accessCode := strings.TrimSpace(req.AccessCode)
	challengeID := strings.TrimSpace(string(req.ChallengeID))
	if accessCode == "" || challengeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Access code dan challenge ID diperlukan",
		})
	}

	decision, err := ctrl.Validator.CheckAccess(c.UserContext(), accessCode, challengeID)
	if err != nil {
		log.Printf("[ERROR] check-access: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Database query failed",
		})
	}

	if !decision.Granted {
		log.Printf("[CTF] access denied code=%s challenge=%s", accessCode, challengeID)
		return c.JSON(fiber.Map{
			"status":  "success",
			"valid":   false,
			"message": decision.Reason,
		})
	}

	log.Printf("[CTF] access granted challenge=%s (%s)", challengeID, decision.Challenge.Title)
	return c.JSON(fiber.Map{
		"status": "success",
		"valid":  true,
		"challenge": fiber.Map{
			"id":          decision.Challenge.ID,
			"title":       decision.Challenge.Title,
			"drive_link":  decision.Challenge.DriveLink,
			"access_code": decision.Challenge.AccessCode,
		},
	})
}

// GET /api/ctf-access/access-codes (admin)
func (ctrl *AccessController) ListAccessCodes(c *fiber.Ctx) error {
	type accessCodeRow struct {
		ID           uint   `json:"id"`
		Title        string `json:"title"`
		AccessCode   string `json:"access_code"`
		DriveLink    string `json:"drive_link"`
		CategoryName string `json:"category_name"`
	}

	var rows []accessCodeRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("ctf_challenges AS c").
		Select("c.id, c.title, c.access_code, c.drive_link, cat.name AS category_name").
		Joins("JOIN ctf_categories cat ON c.category_id = cat.id").
		Where("c.is_active = ?", true).
		Order("c.id").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil daftar access code")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PUT /api/ctf-access/access-code/:id (admin)
func (ctrl *AccessController) UpdateAccessCode(c *fiber.Ctx) error {
	id := c.Params("id")

	var req updateAccessCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if strings.TrimSpace(req.AccessCode) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Access code diperlukan")
	}

	var challenge model.CTFChallengeModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&challenge, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Challenge tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil challenge")
	}

	now := time.Now()
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&challenge).Updates(map[string]interface{}{
		"access_code": req.AccessCode,
		"updated_at":  now,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update access code")
	}
	return helper.JsonUpdated(c, "Access code berhasil diperbarui", challenge)
}

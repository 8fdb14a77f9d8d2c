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

type RankingController struct {
	DB *gorm.DB
}

func NewRankingController(db *gorm.DB) *RankingController {
	return &RankingController{DB: db}
}

// GET /api/rankings — papan skor, urut total_score tertinggi dulu
func (ctrl *RankingController) GetAll(c *fiber.Ctx) error {
	var rankings []model.CTFRankingModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("total_score DESC").
		Find(&rankings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data ranking")
	}
	return helper.JsonOK(c, "ok", rankings)
}

// GET /api/rankings/:id
func (ctrl *RankingController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var ranking model.CTFRankingModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&ranking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ranking tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil ranking")
	}
	return helper.JsonOK(c, "ok", ranking)
}

// POST /api/rankings
func (ctrl *RankingController) Create(c *fiber.Ctx) error {
	var req dto.RankingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	ranking := model.CTFRankingModel{
		Nama:              req.Nama,
		ChallengeTerakhir: req.ChallengeTerakhir,
		LevelTerakhir:     req.LevelTerakhir,
		ScoreTerakhir:     req.ScoreTerakhir,
		TotalScore:        req.TotalScore,
		ListSoal:          req.ListSoal,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&ranking).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ranking")
	}
	return helper.JsonCreated(c, "Ranking berhasil dibuat", ranking)
}

// PUT /api/rankings/:id
func (ctrl *RankingController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var ranking model.CTFRankingModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&ranking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ranking tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil ranking")
	}

	var req dto.RankingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"nama":               req.Nama,
		"challenge_terakhir": req.ChallengeTerakhir,
		"level_terakhir":     req.LevelTerakhir,
		"score_terakhir":     req.ScoreTerakhir,
		"total_score":        req.TotalScore,
		"list_soal":          req.ListSoal,
		"updated_at":         now,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&ranking).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update ranking")
	}
	return helper.JsonUpdated(c, "Ranking berhasil diperbarui", ranking)
}

// DELETE /api/rankings/:id
func (ctrl *RankingController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var ranking model.CTFRankingModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&ranking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ranking tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil ranking")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&ranking).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus ranking")
	}
	return helper.JsonDeleted(c, "Ranking berhasil dihapus", ranking)
}

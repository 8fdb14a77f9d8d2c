package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/ctf/playground/dto"
	"cyberku_backend/internals/features/ctf/playground/model"
	helper "cyberku_backend/internals/helpers"
)

type PlaygroundController struct {
	DB *gorm.DB
}

func NewPlaygroundController(db *gorm.DB) *PlaygroundController {
	return &PlaygroundController{DB: db}
}

/* ==========================
   PUBLIC
========================== */

// GET /api/ctf-playground/categories
// Kategori aktif + challenge aktifnya (tanpa flag & access_code).
func (ctrl *PlaygroundController) GetCategoriesWithChallenges(c *fiber.Ctx) error {
	var categories []model.CTFCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("is_active = ?", true).
		Order("id").
		Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data kategori")
	}

	if len(categories) == 0 {
		return helper.JsonOK(c, "ok", []dto.CategoryWithChallenges{})
	}

	ids := make([]uint, 0, len(categories))
	for _, cat := range categories {
		ids = append(ids, cat.ID)
	}

	var challenges []model.CTFChallengeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("category_id IN ? AND is_active = ?", ids, true).
		Order("sort_order").
		Find(&challenges).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data challenge")
	}

	byCategory := make(map[uint][]dto.PublicChallenge, len(categories))
	for _, ch := range challenges {
		byCategory[ch.CategoryID] = append(byCategory[ch.CategoryID], dto.ToPublicChallenge(ch))
	}

	out := make([]dto.CategoryWithChallenges, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.CategoryWithChallenges{
			ID:          cat.ID,
			Name:        cat.Name,
			Slug:        cat.Slug,
			Description: cat.Description,
			IsActive:    cat.IsActive,
			CreatedAt:   cat.CreatedAt,
			Challenges:  byCategory[cat.ID],
		})
	}

	return helper.JsonOK(c, "ok", out)
}

// GET /api/ctf-playground/page-config
func (ctrl *PlaygroundController) GetPageConfig(c *fiber.Ctx) error {
	var cfg model.CTFPageConfigModel
	err := ctrl.DB.WithContext(c.UserContext()).Order("id DESC").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Default saat belum ada konfigurasi tersimpan
		return helper.JsonOK(c, "ok", fiber.Map{
			"header_title":  "Playground CTF",
			"page_subtitle": "Tempat bermain / berlatih untuk memantapkan praktikal skill di Capture The Flag",
		})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil page config")
	}
	return helper.JsonOK(c, "ok", cfg)
}

// PUT /api/ctf-playground/page-config (upsert)
func (ctrl *PlaygroundController) UpdatePageConfig(c *fiber.Ctx) error {
	var req dto.PageConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	now := time.Now()
	var cfg model.CTFPageConfigModel
	err := ctrl.DB.WithContext(c.UserContext()).Order("id DESC").First(&cfg).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cfg = model.CTFPageConfigModel{
			HeaderTitle:  req.HeaderTitle,
			PageSubtitle: req.PageSubtitle,
			UpdatedAt:    &now,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&cfg).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan page config")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil page config")
	default:
		updates := map[string]interface{}{
			"header_title":  req.HeaderTitle,
			"page_subtitle": req.PageSubtitle,
			"updated_at":    now,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Model(&cfg).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update page config")
		}
	}

	return helper.JsonUpdated(c, "Page config tersimpan", cfg)
}

/* ==========================
   ADMIN: CATEGORY
========================== */

// GET /api/ctf-playground/admin/categories
func (ctrl *PlaygroundController) GetAllCategories(c *fiber.Ctx) error {
	var categories []model.CTFCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).Order("id").Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data kategori")
	}
	return helper.JsonOK(c, "ok", categories)
}

// GET /api/ctf-playground/admin/categories/:id
func (ctrl *PlaygroundController) GetCategoryByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var category model.CTFCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil kategori")
	}
	return helper.JsonOK(c, "ok", category)
}

// POST /api/ctf-playground/admin/categories
func (ctrl *PlaygroundController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := model.CTFCategoryModel{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    isActive,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}
	return helper.JsonCreated(c, "Kategori berhasil dibuat", category)
}

// PUT /api/ctf-playground/admin/categories/:id
func (ctrl *PlaygroundController) UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category model.CTFCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil kategori")
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"slug":        req.Slug,
		"description": req.Description,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&category).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update kategori")
	}
	return helper.JsonUpdated(c, "Kategori berhasil diperbarui", category)
}

// DELETE /api/ctf-playground/admin/categories/:id
// Kategori yang masih punya challenge tidak boleh dihapus.
func (ctrl *PlaygroundController) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var count int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CTFChallengeModel{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek challenge kategori")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"Kategori tidak bisa dihapus karena masih memiliki challenge. Hapus challenge-nya dulu.")
	}

	var category model.CTFCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil kategori")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus kategori")
	}
	return helper.JsonDeleted(c, "Kategori berhasil dihapus", category)
}

/* ==========================
   ADMIN: CHALLENGE
========================== */

// GET /api/ctf-playground/admin/challenges
func (ctrl *PlaygroundController) GetAllChallenges(c *fiber.Ctx) error {
	var rows []dto.ChallengeWithCategory
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("ctf_challenges AS chal").
		Select("chal.*, cat.name AS category_name, cat.slug AS category_slug").
		Joins("LEFT JOIN ctf_categories cat ON chal.category_id = cat.id").
		Order("cat.id, chal.sort_order").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data challenge")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/ctf-playground/admin/challenges/:id
func (ctrl *PlaygroundController) GetChallengeByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var challenge model.CTFChallengeModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&challenge, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Challenge tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil challenge")
	}
	return helper.JsonOK(c, "ok", challenge)
}

// POST /api/ctf-playground/admin/challenges
func (ctrl *PlaygroundController) CreateChallenge(c *fiber.Ctx) error {
	var req dto.ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	// category_id wajib menunjuk kategori yang ada
	var catCount int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CTFCategoryModel{}).
		Where("id = ?", req.CategoryID).
		Count(&catCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek kategori")
	}
	if catCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak ditemukan")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	challenge := model.CTFChallengeModel{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Level:       req.Level,
		Price:       req.Price,
		Hint:        req.Hint,
		DriveLink:   req.DriveLink,
		Flag:        req.Flag,
		AccessCode:  req.AccessCode,
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&challenge).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat challenge")
	}
	return helper.JsonCreated(c, "Challenge berhasil dibuat", challenge)
}

// PUT /api/ctf-playground/admin/challenges/:id
func (ctrl *PlaygroundController) UpdateChallenge(c *fiber.Ctx) error {
	id := c.Params("id")

	var challenge model.CTFChallengeModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&challenge, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Challenge tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil challenge")
	}

	var req dto.ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	if req.CategoryID != challenge.CategoryID {
		var catCount int64
		if err := ctrl.DB.WithContext(c.UserContext()).
			Model(&model.CTFCategoryModel{}).
			Where("id = ?", req.CategoryID).
			Count(&catCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek kategori")
		}
		if catCount == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak ditemukan")
		}
	}

	now := time.Now()
	updates := map[string]interface{}{
		"category_id": req.CategoryID,
		"title":       req.Title,
		"description": req.Description,
		"level":       req.Level,
		"price":       req.Price,
		"hint":        req.Hint,
		"drive_link":  req.DriveLink,
		"flag":        req.Flag,
		"sort_order":  req.SortOrder,
		"updated_at":  now,
	}
	if req.AccessCode != "" {
		updates["access_code"] = req.AccessCode
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&challenge).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update challenge")
	}
	return helper.JsonUpdated(c, "Challenge berhasil diperbarui", challenge)
}

// DELETE /api/ctf-playground/admin/challenges/:id
func (ctrl *PlaygroundController) DeleteChallenge(c *fiber.Ctx) error {
	id := c.Params("id")

	var challenge model.CTFChallengeModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&challenge, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Challenge tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil challenge")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&challenge).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus challenge")
	}
	return helper.JsonDeleted(c, "Challenge berhasil dihapus", challenge)
}

package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberku_backend/internals/features/profiles/profile/dto"
	"cyberku_backend/internals/features/profiles/profile/model"
	"cyberku_backend/internals/features/profiles/profile/service"
	helper "cyberku_backend/internals/helpers"
	ossHelper "cyberku_backend/internals/helpers/oss"
)

/*
ProfileController mengelola profil publik + riwayat foto.
Blob boleh nil (mis. ENV OSS belum di-set saat dev lokal): endpoint yang
butuh upload akan balas 503, endpoint read tetap jalan.
*/
type ProfileController struct {
	DB     *gorm.DB
	Writer *service.ProfileWriter
	Blob   ossHelper.BlobService
}

func NewProfileController(db *gorm.DB, blob ossHelper.BlobService) *ProfileController {
	return &ProfileController{DB: db, Writer: service.NewProfileWriter(db), Blob: blob}
}

// POST /api/profile (multipart: username + image)
// Insert profil dan history "initial" harus satu transaksi: kalau salah satu
// gagal, foto yang terlanjur ke-upload dihapus lagi.
func (ctrl *ProfileController) Create(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	if username == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username wajib diisi")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File image wajib diupload")
	}
	if ctrl.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Upload gambar belum dikonfigurasi")
	}

	photoURL, err := ctrl.Blob.UploadProfileImage(c.UserContext(), fh)
	if err != nil {
		log.Printf("[ERROR] upload foto profil gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal upload foto profil")
	}

	profile := model.ProfileModel{
		Username:   username,
		ProfileImg: &photoURL,
	}
	txErr := ctrl.Writer.CreateWithHistory(c.UserContext(), &profile, photoURL)
	if txErr != nil {
		log.Printf("[ERROR] simpan profil gagal: %v", txErr)
		if delErr := ctrl.Blob.DeleteByPublicURL(c.UserContext(), photoURL); delErr != nil {
			log.Printf("[WARN] gagal bersihkan foto orphan %s: %v", photoURL, delErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan profil")
	}

	return helper.JsonCreated(c, "Profil berhasil dibuat", dto.ProfileResponse{
		ID:         profile.ID,
		Username:   profile.Username,
		ProfileImg: profile.ProfileImg,
	})
}

// PUT /api/profile/:id (multipart: username opsional, image opsional)
// History "update" hanya ditulis kalau fotonya memang ganti.
func (ctrl *ProfileController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var profile model.ProfileModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil profil")
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if username := strings.TrimSpace(c.FormValue("username")); username != "" {
		updates["username"] = username
	}

	var newPhotoURL string
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		if ctrl.Blob == nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Upload gambar belum dikonfigurasi")
		}
		newPhotoURL, err = ctrl.Blob.UploadProfileImage(c.UserContext(), fh)
		if err != nil {
			log.Printf("[ERROR] upload foto profil gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal upload foto profil")
		}
		updates["profile_img"] = newPhotoURL
	}

	txErr := ctrl.Writer.UpdateWithHistory(c.UserContext(), &profile, updates, newPhotoURL)
	if txErr != nil {
		log.Printf("[ERROR] update profil gagal: %v", txErr)
		if newPhotoURL != "" {
			if delErr := ctrl.Blob.DeleteByPublicURL(c.UserContext(), newPhotoURL); delErr != nil {
				log.Printf("[WARN] gagal bersihkan foto orphan %s: %v", newPhotoURL, delErr)
			}
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil")
	}

	if username, ok := updates["username"].(string); ok {
		profile.Username = username
	}
	if newPhotoURL != "" {
		profile.ProfileImg = &newPhotoURL
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.ProfileResponse{
		ID:         profile.ID,
		Username:   profile.Username,
		ProfileImg: profile.ProfileImg,
	})
}

// GET /api/profile/:id
func (ctrl *ProfileController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var profile model.ProfileModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil profil")
	}
	return helper.JsonOK(c, "ok", dto.ProfileResponse{
		ID:         profile.ID,
		Username:   profile.Username,
		ProfileImg: profile.ProfileImg,
	})
}

// GET /api/profile/:id/photo-history
func (ctrl *ProfileController) GetPhotoHistory(c *fiber.Ctx) error {
	id := c.Params("id")

	var history []model.ProfilePhotoHistoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("profile_id = ?", id).
		Order("created_at DESC").
		Find(&history).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil riwayat foto")
	}
	return helper.JsonOK(c, "ok", history)
}

// DELETE /api/profile/photo-history/:id
func (ctrl *ProfileController) DeletePhotoHistory(c *fiber.Ctx) error {
	id := c.Params("id")

	var entry model.ProfilePhotoHistoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Riwayat foto tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil riwayat foto")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus riwayat foto")
	}
	return helper.JsonDeleted(c, "Riwayat foto dihapus", fiber.Map{"id": entry.ID})
}

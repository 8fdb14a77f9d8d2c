package service

import (
	"context"

	"gorm.io/gorm"

	"cyberku_backend/internals/constants"
	"cyberku_backend/internals/features/profiles/profile/model"
)

// ProfileWriter membungkus penulisan profil + riwayat foto yang harus atomik.
// Dipisah dari controller supaya jalur transaksinya bisa dites sendiri.
type ProfileWriter struct {
	DB *gorm.DB
}

func NewProfileWriter(db *gorm.DB) *ProfileWriter {
	return &ProfileWriter{DB: db}
}

// CreateWithHistory menyisipkan baris profil dan history "initial" dalam satu
// transaksi: gagal salah satu, dua-duanya batal.
func (w *ProfileWriter) CreateWithHistory(ctx context.Context, profile *model.ProfileModel, photoURL string) error {
	return w.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		history := model.ProfilePhotoHistoryModel{
			ProfileID:  profile.ID,
			PhotoURL:   photoURL,
			ChangeType: constants.PhotoChangeInitial,
		}
		return tx.Create(&history).Error
	})
}

// UpdateWithHistory meng-update profil; history "update" hanya ditulis kalau
// ada foto baru (newPhotoURL != "").
func (w *ProfileWriter) UpdateWithHistory(ctx context.Context, profile *model.ProfileModel, updates map[string]interface{}, newPhotoURL string) error {
	return w.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(profile).Updates(updates).Error; err != nil {
			return err
		}
		if newPhotoURL == "" {
			return nil
		}
		history := model.ProfilePhotoHistoryModel{
			ProfileID:  profile.ID,
			PhotoURL:   newPhotoURL,
			ChangeType: constants.PhotoChangeUpdate,
		}
		return tx.Create(&history).Error
	})
}

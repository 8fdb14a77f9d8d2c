package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cyberku_backend/internals/features/ctf/playground/model"
)

// GormChallengeFinder: implementasi ChallengeFinder di atas GORM.
type GormChallengeFinder struct {
	DB *gorm.DB
}

func NewGormChallengeFinder(db *gorm.DB) *GormChallengeFinder {
	return &GormChallengeFinder{DB: db}
}

func (r *GormChallengeFinder) FindByID(ctx context.Context, id string) (*model.CTFChallengeModel, error) {
	var challenge model.CTFChallengeModel
	err := r.DB.WithContext(ctx).First(&challenge, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

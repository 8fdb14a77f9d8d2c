package dto

import (
	"time"

	"cyberku_backend/internals/features/ctf/playground/model"
)

/* ==========================
   Request DTO
========================== */

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
	IsActive    *bool  `json:"is_active"`
}

type ChallengeRequest struct {
	CategoryID  uint   `json:"category_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Level       string `json:"level" validate:"required,challenge_level"`
	Price       int    `json:"price"`
	Hint        string `json:"hint"`
	DriveLink   string `json:"drive_link"`
	Flag        string `json:"flag" validate:"required"`
	AccessCode  string `json:"access_code"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

type PageConfigRequest struct {
	HeaderTitle  string `json:"header_title"`
	PageSubtitle string `json:"page_subtitle"`
}

/* ==========================
   Response DTO
========================== */

// ChallengeWithCategory dipakai listing admin (join nama kategori)
type ChallengeWithCategory struct {
	model.CTFChallengeModel
	CategoryName *string `json:"category_name" gorm:"column:category_name"`
	CategorySlug *string `json:"category_slug" gorm:"column:category_slug"`
}

// PublicChallenge: versi publik, TANPA flag & access_code
type PublicChallenge struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Price       int    `json:"price"`
	Hint        string `json:"hint"`
	DriveLink   string `json:"drive_link"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

type CategoryWithChallenges struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	Challenges  []PublicChallenge `json:"challenges"`
}

func ToPublicChallenge(m model.CTFChallengeModel) PublicChallenge {
	return PublicChallenge{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Level:       m.Level,
		Price:       m.Price,
		Hint:        m.Hint,
		DriveLink:   m.DriveLink,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
	}
}

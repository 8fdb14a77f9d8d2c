package model

import "time"

type ProfileModel struct {
	ID         uint       `json:"id" gorm:"column:id;primaryKey"`
	Username   string     `json:"username" gorm:"column:username;not null"`
	ProfileImg *string    `json:"profile_img,omitempty" gorm:"column:profile_img"`
	CreatedAt  time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (ProfileModel) TableName() string {
	return "profile"
}

// Jejak pergantian foto: change_type "initial" saat create, "update" setelahnya.
type ProfilePhotoHistoryModel struct {
	ID         uint      `json:"id" gorm:"column:id;primaryKey"`
	ProfileID  uint      `json:"profile_id" gorm:"column:profile_id;not null"`
	PhotoURL   string    `json:"photo_url" gorm:"column:photo_url;not null"`
	ChangeType string    `json:"change_type" gorm:"column:change_type;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

func (ProfilePhotoHistoryModel) TableName() string {
	return "profile_photo_history"
}

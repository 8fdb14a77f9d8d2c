package model

import "time"

// Konten teks halaman CTF, dikelompokkan per section.
type CtfPageContentModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	Section   string     `json:"section" gorm:"column:section;not null"`
	FieldName string     `json:"field_name" gorm:"column:field_name;not null"`
	Content   string     `json:"content" gorm:"column:content"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (CtfPageContentModel) TableName() string {
	return "ctf_page_management"
}

package model

import "time"

// Konten halaman daftar sertifikat, per section + field.
type SertifPageModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	Section   string     `json:"section" gorm:"column:section;not null"`
	FieldName string     `json:"field_name" gorm:"column:field_name;not null"`
	Content   string     `json:"content" gorm:"column:content"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (SertifPageModel) TableName() string {
	return "sertif_page_management"
}

// Konten halaman detail sertifikat, flat per field.
type DetailSertifModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	FieldName string     `json:"field_name" gorm:"column:field_name;not null"`
	Content   string     `json:"content" gorm:"column:content"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (DetailSertifModel) TableName() string {
	return "detail_sertif_management"
}

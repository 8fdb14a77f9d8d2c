package model

import "time"

type SertifikatModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	Kode      string     `json:"kode" gorm:"column:kode;unique;not null"`
	Nama      string     `json:"nama" gorm:"column:nama;not null"`
	Status    string     `json:"status" gorm:"column:status;not null"`
	Event     string     `json:"event" gorm:"column:event;not null"`
	Link      string     `json:"link" gorm:"column:link;not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (SertifikatModel) TableName() string {
	return "sertifikat"
}

package model

import "time"

// Tabel admins lama memakai kolom camelCase, jadi mapping-nya eksplisit.
type AdminModel struct {
	ID          uint       `json:"id" gorm:"column:id;primaryKey"`
	Email       string     `json:"email" gorm:"column:email;unique;not null"`
	Password    string     `json:"-" gorm:"column:password;not null"`
	PhoneNumber *string    `json:"phone_number,omitempty" gorm:"column:phone_number"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:createdAt"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" gorm:"column:updatedAt"`
}

func (AdminModel) TableName() string {
	return "admins"
}

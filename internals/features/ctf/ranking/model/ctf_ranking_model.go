package model

import "time"

type CTFRankingModel struct {
	ID                uint       `json:"id" gorm:"column:id;primaryKey"`
	Nama              string     `json:"nama" gorm:"column:nama;not null"`
	ChallengeTerakhir string     `json:"challenge_terakhir" gorm:"column:challenge_terakhir;not null"`
	LevelTerakhir     string     `json:"level_terakhir" gorm:"column:level_terakhir;not null"`
	ScoreTerakhir     int        `json:"score_terakhir" gorm:"column:score_terakhir"`
	TotalScore        int        `json:"total_score" gorm:"column:total_score"`
	ListSoal          string     `json:"list_soal" gorm:"column:list_soal;not null"`
	CreatedAt         time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (CTFRankingModel) TableName() string {
	return "ctf_ranking"
}

// PageConfigModel: konfigurasi teks halaman ranking (baris terakhir yang dipakai).
type PageConfigModel struct {
	ID          uint       `json:"id" gorm:"column:id;primaryKey"`
	HeaderTitle string     `json:"header_title" gorm:"column:header_title"`
	PageTitle   string     `json:"page_title" gorm:"column:page_title"`
	Description string     `json:"description" gorm:"column:description"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (PageConfigModel) TableName() string {
	return "page_config"
}

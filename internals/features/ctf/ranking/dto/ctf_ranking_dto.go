package dto

type RankingRequest struct {
	Nama              string `json:"nama" validate:"required"`
	ChallengeTerakhir string `json:"challenge_terakhir" validate:"required"`
	LevelTerakhir     string `json:"level_terakhir" validate:"required"`
	ScoreTerakhir     int    `json:"score_terakhir"`
	TotalScore        int    `json:"total_score"`
	ListSoal          string `json:"list_soal" validate:"required"`
}

type PageConfigRequest struct {
	HeaderTitle string `json:"header_title"`
	PageTitle   string `json:"page_title"`
	Description string `json:"description"`
}

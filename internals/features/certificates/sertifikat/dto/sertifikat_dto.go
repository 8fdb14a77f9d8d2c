package dto

type SertifikatRequest struct {
	Kode   string `json:"kode" validate:"required"`
	Nama   string `json:"nama" validate:"required"`
	Status string `json:"status" validate:"required"`
	Event  string `json:"event" validate:"required"`
	Link   string `json:"link" validate:"required"`
}

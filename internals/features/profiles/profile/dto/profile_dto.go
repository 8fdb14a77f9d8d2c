package dto

type ProfileResponse struct {
	ID         uint    `json:"id"`
	Username   string  `json:"username"`
	ProfileImg *string `json:"profile_img,omitempty"`
}
